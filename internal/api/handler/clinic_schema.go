package handler

import (
	"github.com/medoffice/office-api/internal/core/domain"
)

// errorResponse documents the error envelope written by the HTTP error handler.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message string                   `json:"message"`
	Errors  []domain.ValidationError `json:"errors,omitempty"`
}

// --- Patients ---

type createPatientRequest struct {
	FirstName             string  `json:"first_name"              validate:"notblank"`
	LastName              string  `json:"last_name"               validate:"notblank"`
	DateOfBirth           string  `json:"date_of_birth"           validate:"isodate"`
	Gender                string  `json:"gender"                  validate:"oneof=male female other"`
	Phone                 *string `json:"phone"`
	Email                 *string `json:"email"                   validate:"omitempty,email"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	ZipCode               *string `json:"zip_code"                validate:"omitempty,postcode"`
	InsuranceProvider     *string `json:"insurance_provider"`
	InsurancePolicyNumber *string `json:"insurance_policy_number"`
}

var patientMessages = map[string]string{
	"first_name":    "First name is required",
	"last_name":     "Last name is required",
	"date_of_birth": "Valid date of birth is required",
	"gender":        "Valid gender is required",
	"email":         "Valid email is required",
	"zip_code":      "Valid ZIP code is required",
}

func (createPatientRequest) ValidationMessages() map[string]string { return patientMessages }

type updatePatientRequest struct {
	FirstName             *string `json:"first_name"              validate:"omitempty,notblank"`
	LastName              *string `json:"last_name"               validate:"omitempty,notblank"`
	DateOfBirth           *string `json:"date_of_birth"           validate:"omitempty,isodate"`
	Gender                *string `json:"gender"                  validate:"omitempty,oneof=male female other"`
	Phone                 *string `json:"phone"`
	Email                 *string `json:"email"                   validate:"omitempty,email"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	State                 *string `json:"state"`
	ZipCode               *string `json:"zip_code"                validate:"omitempty,postcode"`
	InsuranceProvider     *string `json:"insurance_provider"`
	InsurancePolicyNumber *string `json:"insurance_policy_number"`
}

func (updatePatientRequest) ValidationMessages() map[string]string { return patientMessages }

type listPatientsQuery struct {
	Page     int    `query:"page"     validate:"omitempty,min=1"`
	PageSize int    `query:"pageSize" validate:"omitempty,min=1,max=100"`
	Search   string `query:"search"`
}

type pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type patientListResponse struct {
	Data       []*domain.Patient `json:"data"`
	Pagination pagination        `json:"pagination"`
}

// --- Appointments ---

type createAppointmentRequest struct {
	PatientID       string  `json:"patient_id"       validate:"required,uuid_rfc"`
	DoctorID        string  `json:"doctor_id"        validate:"required,uuid_rfc"`
	AppointmentDate string  `json:"appointment_date" validate:"required,isodate"`
	StartTime       string  `json:"start_time"       validate:"required,datetime=15:04"`
	EndTime         string  `json:"end_time"         validate:"required,datetime=15:04"`
	Status          string  `json:"status"           validate:"omitempty,oneof=scheduled completed canceled no_show"`
	Notes           *string `json:"notes"`
}

var appointmentMessages = map[string]string{
	"patient_id":       "Valid patient ID is required",
	"doctor_id":        "Valid doctor ID is required",
	"appointment_date": "Valid appointment date is required",
	"start_time":       "Valid start time is required (HH:MM)",
	"end_time":         "Valid end time is required (HH:MM)",
	"status":           "Status must be one of scheduled, completed, canceled, no_show",
}

func (createAppointmentRequest) ValidationMessages() map[string]string { return appointmentMessages }

type updateAppointmentRequest struct {
	PatientID       *string `json:"patient_id"       validate:"omitempty,uuid_rfc"`
	DoctorID        *string `json:"doctor_id"        validate:"omitempty,uuid_rfc"`
	AppointmentDate *string `json:"appointment_date" validate:"omitempty,isodate"`
	StartTime       *string `json:"start_time"       validate:"omitempty,datetime=15:04"`
	EndTime         *string `json:"end_time"         validate:"omitempty,datetime=15:04"`
	Status          *string `json:"status"           validate:"omitempty,oneof=scheduled completed canceled no_show"`
	Notes           *string `json:"notes"`
}

func (updateAppointmentRequest) ValidationMessages() map[string]string { return appointmentMessages }

type dateRangeQuery struct {
	StartDate string `query:"start_date" validate:"required,isodate"`
	EndDate   string `query:"end_date"   validate:"required,isodate"`
}

func (dateRangeQuery) ValidationMessages() map[string]string {
	return map[string]string{
		"start_date": "Valid start date is required",
		"end_date":   "Valid end date is required",
	}
}

// --- Medical records ---

type createMedicalRecordRequest struct {
	PatientID string  `json:"patient_id" validate:"required,uuid_rfc"`
	DoctorID  string  `json:"doctor_id"  validate:"required,uuid_rfc"`
	VisitDate string  `json:"visit_date" validate:"required,isodate"`
	Diagnosis *string `json:"diagnosis"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
}

var medicalRecordMessages = map[string]string{
	"patient_id": "Valid patient ID is required",
	"doctor_id":  "Valid doctor ID is required",
	"visit_date": "Valid visit date is required",
}

func (createMedicalRecordRequest) ValidationMessages() map[string]string {
	return medicalRecordMessages
}

type updateMedicalRecordRequest struct {
	PatientID *string `json:"patient_id" validate:"omitempty,uuid_rfc"`
	DoctorID  *string `json:"doctor_id"  validate:"omitempty,uuid_rfc"`
	VisitDate *string `json:"visit_date" validate:"omitempty,isodate"`
	Diagnosis *string `json:"diagnosis"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
}

func (updateMedicalRecordRequest) ValidationMessages() map[string]string {
	return medicalRecordMessages
}
