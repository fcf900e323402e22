package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

// SessionTTL bounds how long a signed-out token stays on the revocation list.
const SessionTTL = 7 * 24 * time.Hour

// AuthService implements registration, login and logout on top of the
// identity provider.
type AuthService struct {
	provider ports.IdentityProvider
	users    ports.UserRepository
	revoked  ports.RevocationStore
	log      zerolog.Logger
}

func NewAuthService(provider ports.IdentityProvider, users ports.UserRepository, revoked ports.RevocationStore, log zerolog.Logger) *AuthService {
	return &AuthService{provider: provider, users: users, revoked: revoked, log: log}
}

// Register creates the provider identity and then the application profile.
// If the profile cannot be stored the identity is deleted again; a failed
// rollback is logged and the original error is returned.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.InvalidInput("Email and password are required", nil)
	}

	role := domain.DefaultRole
	if in.Role != "" {
		r, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, domain.InvalidInput("Validation failed", []domain.ValidationError{{
				Field:   "role",
				Message: "Role must be one of admin, doctor, receptionist",
				Value:   in.Role,
			}})
		}
		role = r
	}

	identity, err := s.provider.SignUp(ctx, in.Email, in.Password, map[string]any{
		"full_name": in.FullName,
		"role":      string(role),
	})
	if err != nil {
		s.log.Error().Err(err).Str("email", in.Email).Msg("signup failed")
		return nil, err
	}

	var fullName *string
	if name := strings.TrimSpace(in.FullName); name != "" {
		fullName = &name
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:        identity.ID,
		Email:     in.Email,
		FullName:  fullName,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", identity.ID.String()).Msg("profile creation failed, rolling back identity")
		if delErr := s.provider.DeleteUser(ctx, identity.ID); delErr != nil {
			s.log.Error().Err(delErr).Str("user_id", identity.ID.String()).Msg("identity rollback failed")
		}
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.Conflict("User already exists", err)
		}
		return nil, domain.Upstream("Failed to create user profile", err)
	}

	s.log.Info().Str("user_id", user.ID.String()).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// Login signs in with the provider and refuses deactivated or profile-less
// accounts. A refused login signs the fresh session out again.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.InvalidInput("Email and password are required", nil)
	}

	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return nil, domain.Unauthenticated("Invalid email or password")
	}

	user, err := s.users.FindByID(ctx, session.Identity.ID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.Upstream(msgProfileLoadError, err)
	}
	if user == nil || !user.IsActive {
		if outErr := s.provider.SignOut(ctx, session.AccessToken); outErr != nil {
			s.log.Warn().Err(outErr).Msg("sign out of refused session failed")
		}
		return nil, domain.Forbidden(msgAccountInactive)
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("user logged in")
	return &ports.LoginResult{
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt,
		User:        user,
	}, nil
}

// Logout ends the provider session and puts the token on the revocation
// list. An empty token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.provider.SignOut(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("provider sign out failed")
	}

	if s.revoked == nil {
		return nil
	}
	if err := s.revoked.Revoke(ctx, token, SessionTTL); err != nil {
		return domain.Upstream("Failed to revoke session", err)
	}
	return nil
}
