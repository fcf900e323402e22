package handler

import (
	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

// --- Request → domain ---

func toPatient(req *createPatientRequest) *domain.Patient {
	return &domain.Patient{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		DateOfBirth:           req.DateOfBirth,
		Gender:                domain.Gender(req.Gender),
		Phone:                 req.Phone,
		Email:                 req.Email,
		Address:               req.Address,
		City:                  req.City,
		State:                 req.State,
		ZipCode:               req.ZipCode,
		InsuranceProvider:     req.InsuranceProvider,
		InsurancePolicyNumber: req.InsurancePolicyNumber,
	}
}

func toPatientUpdate(req *updatePatientRequest) domain.PatientUpdate {
	u := domain.PatientUpdate{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		DateOfBirth:           req.DateOfBirth,
		Phone:                 req.Phone,
		Email:                 req.Email,
		Address:               req.Address,
		City:                  req.City,
		State:                 req.State,
		ZipCode:               req.ZipCode,
		InsuranceProvider:     req.InsuranceProvider,
		InsurancePolicyNumber: req.InsurancePolicyNumber,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		u.Gender = &g
	}
	return u
}

func toAppointment(req *createAppointmentRequest) (*domain.Appointment, error) {
	patientID, doctorID, err := parsePair(req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}
	return &domain.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: req.AppointmentDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          domain.AppointmentStatus(req.Status),
		Notes:           req.Notes,
	}, nil
}

func toAppointmentUpdate(req *updateAppointmentRequest) (domain.AppointmentUpdate, error) {
	patientID, err := optionalID("patient_id", req.PatientID)
	if err != nil {
		return domain.AppointmentUpdate{}, err
	}
	doctorID, err := optionalID("doctor_id", req.DoctorID)
	if err != nil {
		return domain.AppointmentUpdate{}, err
	}
	u := domain.AppointmentUpdate{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: req.AppointmentDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		s := domain.AppointmentStatus(*req.Status)
		u.Status = &s
	}
	return u, nil
}

func toMedicalRecord(req *createMedicalRecordRequest) (*domain.MedicalRecord, error) {
	patientID, doctorID, err := parsePair(req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}
	return &domain.MedicalRecord{
		PatientID: patientID,
		DoctorID:  doctorID,
		VisitDate: req.VisitDate,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	}, nil
}

func toMedicalRecordUpdate(req *updateMedicalRecordRequest) (domain.MedicalRecordUpdate, error) {
	patientID, err := optionalID("patient_id", req.PatientID)
	if err != nil {
		return domain.MedicalRecordUpdate{}, err
	}
	doctorID, err := optionalID("doctor_id", req.DoctorID)
	if err != nil {
		return domain.MedicalRecordUpdate{}, err
	}
	return domain.MedicalRecordUpdate{
		PatientID: patientID,
		DoctorID:  doctorID,
		VisitDate: req.VisitDate,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	}, nil
}

func parsePair(patient, doctor string) (uuid.UUID, uuid.UUID, error) {
	p, err := optionalID("patient_id", &patient)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	d, err := optionalID("doctor_id", &doctor)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return *p, *d, nil
}

// --- Service result → response ---

func toPatientListResponse(page *ports.PatientPage) patientListResponse {
	items := page.Items
	if items == nil {
		items = []*domain.Patient{}
	}
	return patientListResponse{
		Data: items,
		Pagination: pagination{
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
}
