package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

type MedicalRecordService struct {
	repo ports.MedicalRecordRepository
}

func NewMedicalRecordService(repo ports.MedicalRecordRepository) *MedicalRecordService {
	return &MedicalRecordService{repo: repo}
}

func (s *MedicalRecordService) Create(ctx context.Context, r *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	created, err := s.repo.Create(ctx, r)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownReference) {
			return nil, unknownReference(err)
		}
		return nil, domain.Upstream("Failed to create medical record", err)
	}
	return created, nil
}

func (s *MedicalRecordService) Get(ctx context.Context, id uuid.UUID) (*domain.MedicalRecord, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, medicalRecordError(err)
	}
	return r, nil
}

func (s *MedicalRecordService) Update(ctx context.Context, id uuid.UUID, update domain.MedicalRecordUpdate) (*domain.MedicalRecord, error) {
	r, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, medicalRecordError(err)
	}
	return r, nil
}

func (s *MedicalRecordService) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, domain.Upstream("Failed to fetch medical records", err)
	}
	return nonNil(items), nil
}

func medicalRecordError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMedicalRecordNotFound):
		return domain.NotFound("Medical record not found")
	case errors.Is(err, domain.ErrUnknownReference):
		return unknownReference(err)
	}
	return domain.Upstream("Failed to fetch medical record", err)
}
