package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

const (
	msgNoToken          = "No authentication token provided"
	msgInvalidToken     = "Invalid or expired token"
	msgUserNotFound     = "User not found"
	msgAccountInactive  = "Account is deactivated"
	msgProfileLoadError = "Failed to load user profile"
)

// Authenticator verifies session tokens and resolves them to active
// application users.
type Authenticator struct {
	verifier ports.TokenVerifier
	users    ports.UserRepository
	revoked  ports.RevocationStore
	log      zerolog.Logger
}

// NewAuthenticator wires the session verifier and identity resolver. revoked
// may be nil, in which case logout revocation is not consulted.
func NewAuthenticator(verifier ports.TokenVerifier, users ports.UserRepository, revoked ports.RevocationStore, log zerolog.Logger) *Authenticator {
	return &Authenticator{verifier: verifier, users: users, revoked: revoked, log: log}
}

// Verify performs a single round trip to the provider. Provider failures of
// any sort are reported as an invalid token.
func (a *Authenticator) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.Unauthenticated(msgNoToken)
	}

	if a.revoked != nil {
		revoked, err := a.revoked.IsRevoked(ctx, token)
		if err != nil {
			return nil, domain.Upstream("Session check failed", err)
		}
		if revoked {
			return nil, domain.Unauthenticated(msgInvalidToken)
		}
	}

	identity, err := a.verifier.VerifyToken(ctx, token)
	if err != nil || identity == nil {
		a.log.Warn().Err(err).Msg("invalid or expired token")
		return nil, domain.Unauthenticated(msgInvalidToken)
	}
	return identity, nil
}

// Resolve is read-only: it never changes the profile it loads.
func (a *Authenticator) Resolve(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	user, err := a.users.FindByID(ctx, identity.ID)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		a.log.Warn().Str("user_id", identity.ID.String()).Msg("no profile for verified identity")
		return nil, domain.Unauthenticated(msgUserNotFound)
	case errors.Is(err, domain.ErrInvalidRole):
		return nil, domain.Internal("Invalid role on user profile", err)
	case err != nil:
		return nil, domain.Upstream(msgProfileLoadError, err)
	}

	if !user.IsActive {
		return nil, domain.Forbidden(msgAccountInactive)
	}
	return user, nil
}
