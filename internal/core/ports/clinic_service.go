package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
)

// PatientPage is one page of a patient listing.
type PatientPage struct {
	Items      []*domain.Patient
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

type PatientService interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, id uuid.UUID, update domain.PatientUpdate) (*domain.Patient, error)
	List(ctx context.Context, filter domain.PatientFilter) (*PatientPage, error)
}

type AppointmentService interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, update domain.AppointmentUpdate) (*domain.Appointment, error)
	ListByDateRange(ctx context.Context, r domain.DateRange) ([]*domain.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, r domain.DateRange) ([]*domain.Appointment, error)
}

type MedicalRecordService interface {
	Create(ctx context.Context, r *domain.MedicalRecord) (*domain.MedicalRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.MedicalRecord, error)
	Update(ctx context.Context, id uuid.UUID, update domain.MedicalRecordUpdate) (*domain.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error)
}
