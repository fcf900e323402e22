package domain

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient is a person registered with the office. DateOfBirth is an
// ISO-8601 calendar date (YYYY-MM-DD).
type Patient struct {
	ID                    uuid.UUID `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	DateOfBirth           string    `json:"date_of_birth"`
	Gender                Gender    `json:"gender"`
	Phone                 *string   `json:"phone"`
	Email                 *string   `json:"email"`
	Address               *string   `json:"address"`
	City                  *string   `json:"city"`
	State                 *string   `json:"state"`
	ZipCode               *string   `json:"zip_code"`
	InsuranceProvider     *string   `json:"insurance_provider"`
	InsurancePolicyNumber *string   `json:"insurance_policy_number"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// PatientUpdate carries the fields to change; nil means untouched.
type PatientUpdate struct {
	FirstName             *string
	LastName              *string
	DateOfBirth           *string
	Gender                *Gender
	Phone                 *string
	Email                 *string
	Address               *string
	City                  *string
	State                 *string
	ZipCode               *string
	InsuranceProvider     *string
	InsurancePolicyNumber *string
}

// PatientFilter selects a page of patients. Page is 1-based.
type PatientFilter struct {
	Search   string
	Page     int
	PageSize int
}

// Offset returns the zero-based row offset of the page.
func (f PatientFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
