package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/medoffice/office-api/internal/core/domain"
)

// integration tests run inside a transaction that is always rolled back.
func txForTest(t *testing.T) pgx.Tx {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Connect(ctx, Config{URL: url, MaxConns: 2})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	if _, err := Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return beginRollback(t, pool)
}

func beginRollback(t *testing.T, pool *pgxpool.Pool) pgx.Tx {
	t.Helper()
	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// savepoint runs fn in a nested transaction so an expected failure does not
// abort the outer one.
func savepoint(t *testing.T, tx pgx.Tx, fn func(db queryable) error) error {
	t.Helper()
	sp, err := tx.Begin(context.Background())
	if err != nil {
		t.Fatalf("savepoint: %v", err)
	}
	defer func() { _ = sp.Rollback(context.Background()) }()
	return fn(sp)
}

func TestRepositories_Integration(t *testing.T) {
	tx := txForTest(t)
	ctx := context.Background()

	users := NewUserRepository(tx)
	patients := NewPatientRepository(tx)
	appointments := NewAppointmentRepository(tx)
	records := NewMedicalRecordRepository(tx)

	doctor, err := users.Create(ctx, &domain.User{ID: uuid.New(), Email: uuid.NewString() + "@clinic.test", Role: domain.RoleDoctor, IsActive: true})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	err = savepoint(t, tx, func(db queryable) error {
		_, err := NewUserRepository(db).Create(ctx, doctor)
		return err
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	patient, err := patients.Create(ctx, &domain.Patient{FirstName: "Ann", LastName: "Lee", DateOfBirth: "1980-02-03", Gender: domain.GenderFemale})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if patient.DateOfBirth != "1980-02-03" {
		t.Fatalf("unexpected date of birth %q", patient.DateOfBirth)
	}

	page, total, err := patients.List(ctx, domain.PatientFilter{Search: "ann", Page: 1, PageSize: 10})
	if err != nil || total < 1 || len(page) < 1 {
		t.Fatalf("list patients: %d %d %v", len(page), total, err)
	}

	appt, err := appointments.Create(ctx, &domain.Appointment{
		PatientID: patient.ID, DoctorID: doctor.ID,
		AppointmentDate: "2026-03-10", StartTime: "09:00", EndTime: "09:30",
		Status: domain.AppointmentScheduled,
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	if appt.Patient == nil || appt.Doctor == nil || appt.Doctor.ID != doctor.ID {
		t.Fatalf("expected joined patient and doctor: %+v", appt)
	}

	err = savepoint(t, tx, func(db queryable) error {
		_, err := NewAppointmentRepository(db).Create(ctx, &domain.Appointment{
			PatientID: uuid.New(), DoctorID: doctor.ID,
			AppointmentDate: "2026-03-10", StartTime: "10:00", EndTime: "10:30",
			Status: domain.AppointmentScheduled,
		})
		return err
	})
	if !errors.Is(err, domain.ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}

	rec, err := records.Create(ctx, &domain.MedicalRecord{PatientID: patient.ID, DoctorID: doctor.ID, VisitDate: "2026-03-10"})
	if err != nil {
		t.Fatalf("create medical record: %v", err)
	}
	list, err := records.ListByPatient(ctx, patient.ID)
	if err != nil || len(list) != 1 || list[0].ID != rec.ID {
		t.Fatalf("list medical records: %v %v", list, err)
	}

	err = savepoint(t, tx, func(db queryable) error { return NewUserRepository(db).Delete(ctx, doctor.ID) })
	if !errors.Is(err, domain.ErrUserInUse) {
		t.Fatalf("expected ErrUserInUse, got %v", err)
	}
}

func TestRepositories_NotFound(t *testing.T) {
	tx := txForTest(t)
	ctx := context.Background()

	if _, err := NewUserRepository(tx).FindByID(ctx, uuid.New()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user: %v", err)
	}
	if _, err := NewPatientRepository(tx).FindByID(ctx, uuid.New()); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("patient: %v", err)
	}
	if _, err := NewAppointmentRepository(tx).FindByID(ctx, uuid.New()); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("appointment: %v", err)
	}
	if _, err := NewMedicalRecordRepository(tx).FindByID(ctx, uuid.New()); !errors.Is(err, domain.ErrMedicalRecordNotFound) {
		t.Fatalf("medical record: %v", err)
	}
	if err := NewUserRepository(tx).Delete(ctx, uuid.New()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("delete user: %v", err)
	}
}
