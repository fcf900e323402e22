package domain

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is the clinical note of one visit.
type MedicalRecord struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	VisitDate string    `json:"visit_date"`
	Diagnosis *string   `json:"diagnosis"`
	Treatment *string   `json:"treatment"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Patient *Patient `json:"patient,omitempty"`
	Doctor  *User    `json:"doctor,omitempty"`
}

type MedicalRecordUpdate struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	VisitDate *string
	Diagnosis *string
	Treatment *string
	Notes     *string
}
