package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

const patientColumns = `id, first_name, last_name, date_of_birth::text, gender,
	phone, email, address, city, state, zip_code,
	insurance_provider, insurance_policy_number, created_at, updated_at`

// PatientRepository implements ports.PatientRepository on the patients table.
type PatientRepository struct {
	db queryable
}

func NewPatientRepository(db queryable) ports.PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	return scanPatient(r.db.QueryRow(ctx, `
		INSERT INTO patients (
			first_name, last_name, date_of_birth, gender,
			phone, email, address, city, state, zip_code,
			insurance_provider, insurance_policy_number
		) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+patientColumns,
		p.FirstName, p.LastName, p.DateOfBirth, string(p.Gender),
		p.Phone, p.Email, p.Address, p.City, p.State, p.ZipCode,
		p.InsuranceProvider, p.InsurancePolicyNumber,
	))
}

func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	return scanPatient(r.db.QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id))
}

func (r *PatientRepository) Update(ctx context.Context, id uuid.UUID, u domain.PatientUpdate) (*domain.Patient, error) {
	var set setClause
	if u.FirstName != nil {
		set.add("first_name", *u.FirstName)
	}
	if u.LastName != nil {
		set.add("last_name", *u.LastName)
	}
	if u.DateOfBirth != nil {
		set.addCast("date_of_birth", "date", *u.DateOfBirth)
	}
	if u.Gender != nil {
		set.add("gender", string(*u.Gender))
	}
	optional := []struct {
		col string
		v   *string
	}{
		{"phone", u.Phone},
		{"email", u.Email},
		{"address", u.Address},
		{"city", u.City},
		{"state", u.State},
		{"zip_code", u.ZipCode},
		{"insurance_provider", u.InsuranceProvider},
		{"insurance_policy_number", u.InsurancePolicyNumber},
	}
	for _, o := range optional {
		if o.v != nil {
			set.add(o.col, *o.v)
		}
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	sql, args := set.build("patients", id, patientColumns)
	return scanPatient(r.db.QueryRow(ctx, sql, args...))
}

// List matches Search case-insensitively against name, email and phone.
func (r *PatientRepository) List(ctx context.Context, f domain.PatientFilter) ([]*domain.Patient, int, error) {
	where := ""
	var args []any
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		where = ` WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1`
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patients`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.PageSize, f.Offset())
	query := fmt.Sprintf(`SELECT %s FROM patients%s ORDER BY last_name, first_name LIMIT $%d OFFSET $%d`,
		patientColumns, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*domain.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	return patients, total, rows.Err()
}

func scanPatient(row pgx.Row) (*domain.Patient, error) {
	var (
		p      domain.Patient
		gender string
	)
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &gender,
		&p.Phone, &p.Email, &p.Address, &p.City, &p.State, &p.ZipCode,
		&p.InsuranceProvider, &p.InsurancePolicyNumber, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Gender = domain.Gender(gender)
	return &p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
