package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

type UserService struct {
	users    ports.UserRepository
	provider ports.IdentityProvider
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, provider ports.IdentityProvider, log zerolog.Logger) *UserService {
	return &UserService{users: users, provider: provider, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, domain.Upstream("Failed to fetch users", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, userError(err)
	}
	return user, nil
}

// UpdateProfile lets a user change their own name and email. The email is
// also changed at the provider so the two stay in step.
func (s *UserService) UpdateProfile(ctx context.Context, principal *domain.Principal, in ports.ProfileUpdate) (*domain.User, error) {
	update := domain.UserUpdate{FullName: in.FullName, Email: in.Email}
	return s.apply(ctx, principal.ID, update)
}

// ChangePassword re-authenticates with the current password before setting
// the new one.
func (s *UserService) ChangePassword(ctx context.Context, principal *domain.Principal, current, next string) error {
	if current == "" || next == "" {
		return domain.InvalidInput("Current and new password are required", nil)
	}
	if _, err := s.provider.SignIn(ctx, principal.Email, current); err != nil {
		return domain.Unauthenticated("Current password is incorrect")
	}
	if err := s.provider.UpdateUser(ctx, principal.ID, ports.IdentityAttributes{Password: &next}); err != nil {
		s.log.Error().Err(err).Str("user_id", principal.ID.String()).Msg("password update failed")
		return err
	}
	s.log.Info().Str("user_id", principal.ID.String()).Msg("password changed")
	return nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, in ports.UserUpdateInput) (*domain.User, error) {
	update := domain.UserUpdate{FullName: in.FullName, Email: in.Email, IsActive: in.IsActive}
	if in.Role != nil {
		role, err := domain.ParseRole(*in.Role)
		if err != nil {
			return nil, domain.InvalidInput("Validation failed", []domain.ValidationError{{
				Field:   "role",
				Message: "Role must be one of admin, doctor, receptionist",
				Value:   *in.Role,
			}})
		}
		update.Role = &role
	}
	return s.apply(ctx, id, update)
}

// Delete removes the profile first; without it the identity can no longer
// pass the resolver even if the provider call below fails.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return userError(err)
	}
	if err := s.provider.DeleteUser(ctx, id); err != nil {
		s.log.Error().Err(err).Str("user_id", id.String()).Msg("deleting identity failed, profile already removed")
		return err
	}
	s.log.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}

func (s *UserService) apply(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	if update.Empty() {
		return s.Get(ctx, id)
	}

	user, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, userError(err)
	}

	if update.Email != nil {
		if err := s.provider.UpdateUser(ctx, id, ports.IdentityAttributes{Email: update.Email}); err != nil {
			s.log.Error().Err(err).Str("user_id", id.String()).Msg("updating identity email failed")
			return nil, err
		}
	}
	return user, nil
}

func userError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return domain.NotFound(msgUserNotFound)
	case errors.Is(err, domain.ErrUserExists):
		return domain.Conflict("User already exists", err)
	case errors.Is(err, domain.ErrUserInUse):
		return domain.Conflict("User has appointments or medical records", err)
	}
	return domain.Upstream("User store failure", err)
}
