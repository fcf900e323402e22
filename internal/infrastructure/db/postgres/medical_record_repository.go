package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

const medicalRecordSelect = `SELECT
		m.id, m.patient_id, m.doctor_id, m.visit_date::text,
		m.diagnosis, m.treatment, m.notes, m.created_at, m.updated_at,
		` + joinedPatientColumns + `,
		` + joinedDoctorColumns + `
	FROM medical_records m
	JOIN patients p ON p.id = m.patient_id
	JOIN users d ON d.id = m.doctor_id`

// MedicalRecordRepository implements ports.MedicalRecordRepository.
type MedicalRecordRepository struct {
	db queryable
}

func NewMedicalRecordRepository(db queryable) ports.MedicalRecordRepository {
	return &MedicalRecordRepository{db: db}
}

func (r *MedicalRecordRepository) Create(ctx context.Context, rec *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, doctor_id, visit_date, diagnosis, treatment, notes)
		VALUES ($1, $2, $3::date, $4, $5, $6)
		RETURNING id`,
		rec.PatientID, rec.DoctorID, rec.VisitDate, rec.Diagnosis, rec.Treatment, rec.Notes,
	).Scan(&id)
	if pgCode(err) == codeForeignKeyViolation {
		return nil, domain.ErrUnknownReference
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *MedicalRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.MedicalRecord, error) {
	return scanMedicalRecord(r.db.QueryRow(ctx, medicalRecordSelect+` WHERE m.id = $1`, id))
}

func (r *MedicalRecordRepository) Update(ctx context.Context, id uuid.UUID, u domain.MedicalRecordUpdate) (*domain.MedicalRecord, error) {
	var set setClause
	if u.PatientID != nil {
		set.add("patient_id", *u.PatientID)
	}
	if u.DoctorID != nil {
		set.add("doctor_id", *u.DoctorID)
	}
	if u.VisitDate != nil {
		set.addCast("visit_date", "date", *u.VisitDate)
	}
	if u.Diagnosis != nil {
		set.add("diagnosis", *u.Diagnosis)
	}
	if u.Treatment != nil {
		set.add("treatment", *u.Treatment)
	}
	if u.Notes != nil {
		set.add("notes", *u.Notes)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	sql, args := set.build("medical_records", id, "id")
	var updated uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMedicalRecordNotFound
		}
		if pgCode(err) == codeForeignKeyViolation {
			return nil, domain.ErrUnknownReference
		}
		return nil, err
	}
	return r.FindByID(ctx, updated)
}

func (r *MedicalRecordRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error) {
	rows, err := r.db.Query(ctx, medicalRecordSelect+` WHERE m.patient_id = $1 ORDER BY m.visit_date DESC, m.created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.MedicalRecord
	for rows.Next() {
		rec, err := scanMedicalRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanMedicalRecord(row pgx.Row) (*domain.MedicalRecord, error) {
	var (
		m      domain.MedicalRecord
		p      domain.Patient
		gender string
		d      domain.User
		role   string
	)
	dest := []any{
		&m.ID, &m.PatientID, &m.DoctorID, &m.VisitDate,
		&m.Diagnosis, &m.Treatment, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	}
	dest = append(dest, patientDest(&p, &gender)...)
	dest = append(dest, userDest(&d, &role)...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMedicalRecordNotFound
		}
		return nil, err
	}

	p.Gender = domain.Gender(gender)
	var err error
	if d.Role, err = domain.ParseRole(role); err != nil {
		return nil, fmt.Errorf("doctor %s: %w", d.ID, err)
	}
	m.Patient = &p
	m.Doctor = &d
	return &m, nil
}
