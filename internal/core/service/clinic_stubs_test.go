package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
)

type stubPatientRepo struct {
	patients map[uuid.UUID]*domain.Patient
	err      error
	updates  int
}

func newStubPatientRepo(patients ...*domain.Patient) *stubPatientRepo {
	r := &stubPatientRepo{patients: make(map[uuid.UUID]*domain.Patient)}
	for _, p := range patients {
		r.patients[p.ID] = p
	}
	return r
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *p
	clone.ID = uuid.New()
	r.patients[clone.ID] = &clone
	return &clone, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Patient, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) Update(_ context.Context, id uuid.UUID, update domain.PatientUpdate) (*domain.Patient, error) {
	r.updates++
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	if update.FirstName != nil {
		p.FirstName = *update.FirstName
	}
	if update.Phone != nil {
		p.Phone = update.Phone
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) List(_ context.Context, f domain.PatientFilter) ([]*domain.Patient, int, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	var matched []*domain.Patient
	for _, p := range r.patients {
		if f.Search == "" || strings.Contains(strings.ToLower(p.FirstName+" "+p.LastName), strings.ToLower(f.Search)) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].LastName != matched[j].LastName {
			return matched[i].LastName < matched[j].LastName
		}
		return matched[i].FirstName < matched[j].FirstName
	})
	total := len(matched)
	start := f.Offset()
	if start > total {
		start = total
	}
	end := start + f.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

type stubAppointmentRepo struct {
	items map[uuid.UUID]*domain.Appointment
	err   error
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *a
	clone.ID = uuid.New()
	r.items[clone.ID] = &clone
	return &clone, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return a, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, id uuid.UUID, u domain.AppointmentUpdate) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	return a, nil
}

func (r *stubAppointmentRepo) ListByDateRange(_ context.Context, dr domain.DateRange) ([]*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Appointment
	for _, a := range r.items {
		if a.AppointmentDate >= dr.Start && a.AppointmentDate <= dr.End {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAppointmentRepo) ListByDoctor(ctx context.Context, doctorID uuid.UUID, dr domain.DateRange) ([]*domain.Appointment, error) {
	all, err := r.ListByDateRange(ctx, dr)
	if err != nil {
		return nil, err
	}
	var out []*domain.Appointment
	for _, a := range all {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubMedicalRecordRepo struct {
	items map[uuid.UUID]*domain.MedicalRecord
}

func (r *stubMedicalRecordRepo) Create(_ context.Context, rec *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	clone := *rec
	clone.ID = uuid.New()
	r.items[clone.ID] = &clone
	return &clone, nil
}

func (r *stubMedicalRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.MedicalRecord, error) {
	rec, ok := r.items[id]
	if !ok {
		return nil, domain.ErrMedicalRecordNotFound
	}
	return rec, nil
}

func (r *stubMedicalRecordRepo) Update(_ context.Context, id uuid.UUID, u domain.MedicalRecordUpdate) (*domain.MedicalRecord, error) {
	rec, ok := r.items[id]
	if !ok {
		return nil, domain.ErrMedicalRecordNotFound
	}
	if u.Diagnosis != nil {
		rec.Diagnosis = u.Diagnosis
	}
	return rec, nil
}

func (r *stubMedicalRecordRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error) {
	var out []*domain.MedicalRecord
	for _, rec := range r.items {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	return out, nil
}
