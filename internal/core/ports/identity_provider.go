package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
)

// TokenVerifier resolves a bearer credential to the identity that owns it.
// Any error means the credential is not usable.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.Identity, error)
}

// ProviderSession is the result of a successful password sign-in.
type ProviderSession struct {
	AccessToken string
	ExpiresAt   time.Time
	Identity    domain.Identity
}

// IdentityAttributes are the credential fields an admin may change.
type IdentityAttributes struct {
	Email    *string
	Password *string
}

// IdentityProvider is the external platform that owns credentials.
type IdentityProvider interface {
	TokenVerifier
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*domain.Identity, error)
	SignIn(ctx context.Context, email, password string) (*ProviderSession, error)
	SignOut(ctx context.Context, token string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	UpdateUser(ctx context.Context, id uuid.UUID, attrs IdentityAttributes) error
}

// RevocationStore remembers tokens that were signed out before expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
