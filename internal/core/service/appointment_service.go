package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

type AppointmentService struct {
	repo ports.AppointmentRepository
}

func NewAppointmentService(repo ports.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

func (s *AppointmentService) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if a.Status == "" {
		a.Status = domain.AppointmentScheduled
	}
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownReference) {
			return nil, unknownReference(err)
		}
		return nil, domain.Upstream("Failed to create appointment", err)
	}
	return created, nil
}

func (s *AppointmentService) Get(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appointmentError(err)
	}
	return a, nil
}

func (s *AppointmentService) Update(ctx context.Context, id uuid.UUID, update domain.AppointmentUpdate) (*domain.Appointment, error) {
	a, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, appointmentError(err)
	}
	return a, nil
}

func (s *AppointmentService) ListByDateRange(ctx context.Context, r domain.DateRange) ([]*domain.Appointment, error) {
	items, err := s.repo.ListByDateRange(ctx, r)
	if err != nil {
		return nil, domain.Upstream("Failed to fetch appointments", err)
	}
	return nonNil(items), nil
}

func (s *AppointmentService) ListByDoctor(ctx context.Context, doctorID uuid.UUID, r domain.DateRange) ([]*domain.Appointment, error) {
	items, err := s.repo.ListByDoctor(ctx, doctorID, r)
	if err != nil {
		return nil, domain.Upstream("Failed to fetch appointments", err)
	}
	return nonNil(items), nil
}

func appointmentError(err error) error {
	switch {
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return domain.NotFound("Appointment not found")
	case errors.Is(err, domain.ErrUnknownReference):
		return unknownReference(err)
	}
	return domain.Upstream("Failed to fetch appointment", err)
}

func unknownReference(err error) error {
	return domain.InvalidInput("Patient or doctor does not exist", nil).WithDetails(err.Error())
}

// nonNil keeps empty listings rendering as [] instead of null.
func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
