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

// Joined reads carry the patient and the doctor's profile.
const (
	appointmentSelect = `SELECT
		a.id, a.patient_id, a.doctor_id, a.appointment_date::text,
		a.start_time::text, a.end_time::text, a.status, a.notes, a.created_at, a.updated_at,
		` + joinedPatientColumns + `,
		` + joinedDoctorColumns + `
	FROM appointments a
	JOIN patients p ON p.id = a.patient_id
	JOIN users d ON d.id = a.doctor_id`

	appointmentOrder = ` ORDER BY a.appointment_date, a.start_time`

	joinedPatientColumns = `p.id, p.first_name, p.last_name, p.date_of_birth::text, p.gender,
		p.phone, p.email, p.address, p.city, p.state, p.zip_code,
		p.insurance_provider, p.insurance_policy_number, p.created_at, p.updated_at`

	joinedDoctorColumns = `d.id, d.email, d.full_name, d.role, d.is_active, d.created_at, d.updated_at`
)

// AppointmentRepository implements ports.AppointmentRepository.
type AppointmentRepository struct {
	db queryable
}

func NewAppointmentRepository(db queryable) ports.AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, start_time, end_time, status, notes)
		VALUES ($1, $2, $3::date, $4::time, $5::time, $6, $7)
		RETURNING id`,
		a.PatientID, a.DoctorID, a.AppointmentDate, a.StartTime, a.EndTime, string(a.Status), a.Notes,
	).Scan(&id)
	if pgCode(err) == codeForeignKeyViolation {
		return nil, domain.ErrUnknownReference
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return scanAppointment(r.db.QueryRow(ctx, appointmentSelect+` WHERE a.id = $1`, id))
}

func (r *AppointmentRepository) Update(ctx context.Context, id uuid.UUID, u domain.AppointmentUpdate) (*domain.Appointment, error) {
	var set setClause
	if u.PatientID != nil {
		set.add("patient_id", *u.PatientID)
	}
	if u.DoctorID != nil {
		set.add("doctor_id", *u.DoctorID)
	}
	if u.AppointmentDate != nil {
		set.addCast("appointment_date", "date", *u.AppointmentDate)
	}
	if u.StartTime != nil {
		set.addCast("start_time", "time", *u.StartTime)
	}
	if u.EndTime != nil {
		set.addCast("end_time", "time", *u.EndTime)
	}
	if u.Status != nil {
		set.add("status", string(*u.Status))
	}
	if u.Notes != nil {
		set.add("notes", *u.Notes)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	sql, args := set.build("appointments", id, "id")
	var updated uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		if pgCode(err) == codeForeignKeyViolation {
			return nil, domain.ErrUnknownReference
		}
		return nil, err
	}
	return r.FindByID(ctx, updated)
}

func (r *AppointmentRepository) ListByDateRange(ctx context.Context, dr domain.DateRange) ([]*domain.Appointment, error) {
	return r.list(ctx, appointmentSelect+` WHERE a.appointment_date BETWEEN $1::date AND $2::date`+appointmentOrder,
		dr.Start, dr.End)
}

func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID, dr domain.DateRange) ([]*domain.Appointment, error) {
	return r.list(ctx, appointmentSelect+` WHERE a.doctor_id = $1 AND a.appointment_date BETWEEN $2::date AND $3::date`+appointmentOrder,
		doctorID, dr.Start, dr.End)
}

func (r *AppointmentRepository) list(ctx context.Context, sql string, args ...any) ([]*domain.Appointment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var (
		a      domain.Appointment
		status string
		p      domain.Patient
		gender string
		d      domain.User
		role   string
	)
	dest := []any{
		&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentDate,
		&a.StartTime, &a.EndTime, &status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	}
	dest = append(dest, patientDest(&p, &gender)...)
	dest = append(dest, userDest(&d, &role)...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}

	a.Status = domain.AppointmentStatus(status)
	p.Gender = domain.Gender(gender)
	var err error
	if d.Role, err = domain.ParseRole(role); err != nil {
		return nil, fmt.Errorf("doctor %s: %w", d.ID, err)
	}
	a.Patient = &p
	a.Doctor = &d
	return &a, nil
}

func patientDest(p *domain.Patient, gender *string) []any {
	return []any{
		&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, gender,
		&p.Phone, &p.Email, &p.Address, &p.City, &p.State, &p.ZipCode,
		&p.InsuranceProvider, &p.InsurancePolicyNumber, &p.CreatedAt, &p.UpdatedAt,
	}
}

func userDest(u *domain.User, role *string) []any {
	return []any{&u.ID, &u.Email, &u.FullName, role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt}
}
