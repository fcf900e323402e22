package ports

import (
	"context"
	"time"

	"github.com/medoffice/office-api/internal/core/domain"
)

// RegisterInput carries a registration request. An empty Role means the
// default role.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}

// Authenticator runs the session verifier and identity resolver stages.
type Authenticator interface {
	// Verify validates the token with the provider and the revocation list.
	Verify(ctx context.Context, token string) (*domain.Identity, error)
	// Resolve loads the active application profile for a verified identity.
	Resolve(ctx context.Context, identity *domain.Identity) (*domain.User, error)
}
