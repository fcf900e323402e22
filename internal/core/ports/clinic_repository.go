package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
)

// PatientRepository returns domain.ErrPatientNotFound for missing rows.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, id uuid.UUID, update domain.PatientUpdate) (*domain.Patient, error)
	// List returns one page ordered by last name then first name, and the
	// total number of matching rows.
	List(ctx context.Context, filter domain.PatientFilter) ([]*domain.Patient, int, error)
}

// AppointmentRepository returns domain.ErrAppointmentNotFound for missing rows.
// Loaded appointments embed their patient and doctor.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, update domain.AppointmentUpdate) (*domain.Appointment, error)
	ListByDateRange(ctx context.Context, r domain.DateRange) ([]*domain.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, r domain.DateRange) ([]*domain.Appointment, error)
}

// MedicalRecordRepository returns domain.ErrMedicalRecordNotFound for missing rows.
type MedicalRecordRepository interface {
	Create(ctx context.Context, r *domain.MedicalRecord) (*domain.MedicalRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.MedicalRecord, error)
	Update(ctx context.Context, id uuid.UUID, update domain.MedicalRecordUpdate) (*domain.MedicalRecord, error)
	// ListByPatient returns records newest visit first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error)
}
