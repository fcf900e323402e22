package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
)

// ProfileUpdate is the self-service subset of a user update.
type ProfileUpdate struct {
	FullName *string
	Email    *string
}

// UserUpdateInput is the admin update. Role is parsed by the service.
type UserUpdateInput struct {
	FullName *string
	Email    *string
	Role     *string
	IsActive *bool
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, principal *domain.Principal, update ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, principal *domain.Principal, current, next string) error
	Update(ctx context.Context, id uuid.UUID, input UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
