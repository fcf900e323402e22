package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
)

// UserRepository persists application profiles. FindByID returns
// domain.ErrUserNotFound when no row matches.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
