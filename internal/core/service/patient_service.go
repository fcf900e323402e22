package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type PatientService struct {
	repo ports.PatientRepository
}

func NewPatientService(repo ports.PatientRepository) *PatientService {
	return &PatientService{repo: repo}
}

func (s *PatientService) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, domain.Upstream("Failed to create patient", err)
	}
	return created, nil
}

func (s *PatientService) Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, patientError(err)
	}
	return p, nil
}

// Update checks existence first so a missing patient is a 404 rather than
// an empty update.
func (s *PatientService) Update(ctx context.Context, id uuid.UUID, update domain.PatientUpdate) (*domain.Patient, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	p, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, patientError(err)
	}
	return p, nil
}

func (s *PatientService) List(ctx context.Context, filter domain.PatientFilter) (*ports.PatientPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = DefaultPageSize
	}
	if filter.PageSize > MaxPageSize {
		filter.PageSize = MaxPageSize
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.Upstream("Failed to fetch patients", err)
	}
	if items == nil {
		items = []*domain.Patient{}
	}

	return &ports.PatientPage{
		Items:      items,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		Total:      total,
		TotalPages: (total + filter.PageSize - 1) / filter.PageSize,
	}, nil
}

func patientError(err error) error {
	if errors.Is(err, domain.ErrPatientNotFound) {
		return domain.NotFound("Patient not found")
	}
	return domain.Upstream("Failed to fetch patient", err)
}
