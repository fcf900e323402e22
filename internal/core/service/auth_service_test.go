package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

func TestAuthService_Register_DefaultsToReceptionist(t *testing.T) {
	provider := newStubProvider()
	users := newStubUserRepo()
	svc := NewAuthService(provider, users, nil, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "front@clinic.test",
		Password: "x",
		FullName: "  Front Desk ",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleReceptionist {
		t.Fatalf("expected receptionist, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new user to be active")
	}
	if user.FullName == nil || *user.FullName != "Front Desk" {
		t.Fatalf("unexpected full name: %v", user.FullName)
	}
	if user.ID != provider.ids["front@clinic.test"] {
		t.Fatalf("profile id does not match identity id")
	}
}

func TestAuthService_Register_ExplicitRole(t *testing.T) {
	svc := NewAuthService(newStubProvider(), newStubUserRepo(), nil, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "doc@clinic.test", Password: "pw", Role: "doctor",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleDoctor {
		t.Fatalf("expected doctor, got %s", user.Role)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	provider := newStubProvider()
	svc := NewAuthService(provider, newStubUserRepo(), nil, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "x@clinic.test", Password: "pw", Role: "superuser",
	})
	assertKind(t, err, domain.KindInvalidInput, "Validation failed")
	if len(provider.ids) != 0 {
		t.Fatalf("identity must not be created for an invalid role")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubProvider(), newStubUserRepo(), nil, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@b.c"})
	assertKind(t, err, domain.KindInvalidInput, "")
}

func TestAuthService_Register_RollsBackIdentity(t *testing.T) {
	provider := newStubProvider()
	users := newStubUserRepo()
	users.createErr = errStore
	svc := NewAuthService(provider, users, nil, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@clinic.test", Password: "pw"})
	assertKind(t, err, domain.KindUpstream, "")
	if len(provider.deleted) != 1 || provider.deleted[0] != provider.ids["a@clinic.test"] {
		t.Fatalf("expected identity rollback, deleted=%v", provider.deleted)
	}
}

func TestAuthService_Register_RollbackFailureKeepsOriginalError(t *testing.T) {
	provider := newStubProvider()
	provider.deleteErr = errors.New("admin api down")
	users := newStubUserRepo()
	users.createErr = domain.ErrUserExists
	svc := NewAuthService(provider, users, nil, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@clinic.test", Password: "pw"})
	assertKind(t, err, domain.KindConflict, "")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists in chain, got %v", err)
	}
}

func TestAuthService_Register_ProviderError(t *testing.T) {
	provider := newStubProvider()
	provider.signUpErr = domain.Conflict("User already registered", nil)
	users := newStubUserRepo()
	svc := NewAuthService(provider, users, nil, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@clinic.test", Password: "pw"})
	if !errors.Is(err, provider.signUpErr) {
		t.Fatalf("expected provider error to pass through, got %v", err)
	}
	if len(users.users) != 0 {
		t.Fatalf("no profile must be written when signup fails")
	}
}

func TestAuthService_Login(t *testing.T) {
	provider := newStubProvider()
	users := newStubUserRepo()
	svc := NewAuthService(provider, users, nil, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterInput{Email: "a@clinic.test", Password: "pw"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	res, err := svc.Login(ctx, "a@clinic.test", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if res.User.Email != "a@clinic.test" {
		t.Fatalf("unexpected user: %+v", res.User)
	}

	_, err = svc.Login(ctx, "a@clinic.test", "wrong")
	assertKind(t, err, domain.KindUnauthenticated, "Invalid email or password")
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	provider := newStubProvider()
	users := newStubUserRepo()
	svc := NewAuthService(provider, users, nil, zerolog.Nop())
	ctx := context.Background()

	user, err := svc.Register(ctx, ports.RegisterInput{Email: "a@clinic.test", Password: "pw"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	users.users[user.ID].IsActive = false

	_, err = svc.Login(ctx, "a@clinic.test", "pw")
	assertKind(t, err, domain.KindForbidden, "Account is deactivated")
	if len(provider.signedOut) != 1 {
		t.Fatalf("expected refused session to be signed out")
	}
}

func TestAuthService_Logout(t *testing.T) {
	provider := newStubProvider()
	revoked := newStubRevocations()
	svc := NewAuthService(provider, newStubUserRepo(), revoked, zerolog.Nop())
	ctx := context.Background()

	if err := svc.Logout(ctx, ""); err != nil {
		t.Fatalf("empty token logout should be a no-op, got %v", err)
	}
	if len(provider.signedOut) != 0 {
		t.Fatalf("empty token must not reach the provider")
	}

	if err := svc.Logout(ctx, "tok"); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if ttl, ok := revoked.tokens["tok"]; !ok || ttl != SessionTTL {
		t.Fatalf("expected token revoked for %s, got %v", SessionTTL, revoked.tokens)
	}

	revoked.err = errStore
	err := svc.Logout(ctx, "tok2")
	assertKind(t, err, domain.KindUpstream, "Failed to revoke session")
}
