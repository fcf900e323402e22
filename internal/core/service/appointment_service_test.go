package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
)

func TestAppointmentService(t *testing.T) {
	repo := &stubAppointmentRepo{items: make(map[uuid.UUID]*domain.Appointment)}
	svc := NewAppointmentService(repo)
	ctx := context.Background()
	doctor := uuid.New()

	a, err := svc.Create(ctx, &domain.Appointment{
		PatientID:       uuid.New(),
		DoctorID:        doctor,
		AppointmentDate: "2026-03-10",
		StartTime:       "09:00",
		EndTime:         "09:30",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if a.Status != domain.AppointmentScheduled {
		t.Fatalf("expected default status scheduled, got %s", a.Status)
	}

	if _, err := svc.Create(ctx, &domain.Appointment{DoctorID: uuid.New(), AppointmentDate: "2026-04-01"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	byRange, err := svc.ListByDateRange(ctx, domain.DateRange{Start: "2026-03-01", End: "2026-03-31"})
	if err != nil {
		t.Fatalf("ListByDateRange returned error: %v", err)
	}
	if len(byRange) != 1 {
		t.Fatalf("expected 1 appointment in March, got %d", len(byRange))
	}

	byDoctor, err := svc.ListByDoctor(ctx, uuid.New(), domain.DateRange{Start: "2026-01-01", End: "2026-12-31"})
	if err != nil {
		t.Fatalf("ListByDoctor returned error: %v", err)
	}
	if byDoctor == nil || len(byDoctor) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", byDoctor)
	}

	done := domain.AppointmentCompleted
	updated, err := svc.Update(ctx, a.ID, domain.AppointmentUpdate{Status: &done})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != done {
		t.Fatalf("unexpected status %s", updated.Status)
	}

	_, err = svc.Get(ctx, uuid.New())
	assertKind(t, err, domain.KindNotFound, "Appointment not found")

	repo.err = errStore
	_, err = svc.ListByDateRange(ctx, domain.DateRange{})
	assertKind(t, err, domain.KindUpstream, "")
}
