package domain

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCanceled  AppointmentStatus = "canceled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Appointment books a patient with a doctor. AppointmentDate is YYYY-MM-DD,
// StartTime and EndTime are HH:MM[:SS].
type Appointment struct {
	ID              uuid.UUID         `json:"id"`
	PatientID       uuid.UUID         `json:"patient_id"`
	DoctorID        uuid.UUID         `json:"doctor_id"`
	AppointmentDate string            `json:"appointment_date"`
	StartTime       string            `json:"start_time"`
	EndTime         string            `json:"end_time"`
	Status          AppointmentStatus `json:"status"`
	Notes           *string           `json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	Patient *Patient `json:"patient,omitempty"`
	Doctor  *User    `json:"doctor,omitempty"`
}

type AppointmentUpdate struct {
	PatientID       *uuid.UUID
	DoctorID        *uuid.UUID
	AppointmentDate *string
	StartTime       *string
	EndTime         *string
	Status          *AppointmentStatus
	Notes           *string
}

// DateRange bounds a listing, inclusive on both ends.
type DateRange struct {
	Start string
	End   string
}
