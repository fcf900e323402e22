package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

const userColumns = `id, email, full_name, role, is_active, created_at, updated_at`

// UserRepository implements ports.UserRepository on the users table.
type UserRepository struct {
	db queryable
}

func NewUserRepository(db queryable) ports.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	created, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (id, email, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		u.ID, u.Email, u.FullName, string(u.Role), u.IsActive,
	))
	if pgCode(err) == codeUniqueViolation {
		return nil, domain.ErrUserExists
	}
	return created, err
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	var set setClause
	if update.FullName != nil {
		set.add("full_name", *update.FullName)
	}
	if update.Email != nil {
		set.add("email", *update.Email)
	}
	if update.Role != nil {
		set.add("role", string(*update.Role))
	}
	if update.IsActive != nil {
		set.add("is_active", *update.IsActive)
	}
	if set.empty() {
		return r.FindByID(ctx, id)
	}

	sql, args := set.build("users", id, userColumns)
	u, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if pgCode(err) == codeUniqueViolation {
		return nil, domain.ErrUserExists
	}
	return u, err
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if pgCode(err) == codeForeignKeyViolation {
		return domain.ErrUserInUse
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// scanUser reads one users row. An unknown role is an error wrapping
// domain.ErrInvalidRole.
func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if u.Role, err = domain.ParseRole(role); err != nil {
		return nil, err
	}
	return &u, nil
}
