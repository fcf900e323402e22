package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

var errStore = errors.New("store unavailable")

type stubProvider struct {
	identities map[string]*domain.Identity // by token
	passwords  map[string]string           // email -> password
	ids        map[string]uuid.UUID        // email -> id

	signUpErr error
	deleteErr error
	updateErr error

	signedOut []string
	deleted   []uuid.UUID
	updated   []ports.IdentityAttributes
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		identities: make(map[string]*domain.Identity),
		passwords:  make(map[string]string),
		ids:        make(map[string]uuid.UUID),
	}
}

func (p *stubProvider) VerifyToken(_ context.Context, token string) (*domain.Identity, error) {
	id, ok := p.identities[token]
	if !ok {
		return nil, errors.New("invalid JWT")
	}
	return id, nil
}

func (p *stubProvider) SignUp(_ context.Context, email, password string, _ map[string]any) (*domain.Identity, error) {
	if p.signUpErr != nil {
		return nil, p.signUpErr
	}
	id := uuid.New()
	p.passwords[email] = password
	p.ids[email] = id
	return &domain.Identity{ID: id, Email: email}, nil
}

func (p *stubProvider) SignIn(_ context.Context, email, password string) (*ports.ProviderSession, error) {
	if pw, ok := p.passwords[email]; !ok || pw != password {
		return nil, errors.New("invalid login credentials")
	}
	token := "token-" + email
	identity := &domain.Identity{ID: p.ids[email], Email: email}
	p.identities[token] = identity
	return &ports.ProviderSession{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(time.Hour),
		Identity:    *identity,
	}, nil
}

func (p *stubProvider) SignOut(_ context.Context, token string) error {
	p.signedOut = append(p.signedOut, token)
	return nil
}

func (p *stubProvider) DeleteUser(_ context.Context, id uuid.UUID) error {
	p.deleted = append(p.deleted, id)
	return p.deleteErr
}

func (p *stubProvider) UpdateUser(_ context.Context, _ uuid.UUID, attrs ports.IdentityAttributes) error {
	if p.updateErr != nil {
		return p.updateErr
	}
	p.updated = append(p.updated, attrs)
	return nil
}

type stubUserRepo struct {
	users     map[uuid.UUID]*domain.User
	createErr error
	findErr   error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.users[u.ID]; ok {
		return nil, domain.ErrUserExists
	}
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.FullName != nil {
		u.FullName = update.FullName
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.IsActive != nil {
		u.IsActive = *update.IsActive
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRevocations struct {
	tokens map[string]time.Duration
	err    error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{tokens: make(map[string]time.Duration)}
}

func (s *stubRevocations) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.tokens[token] = ttl
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, token string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.tokens[token]
	return ok, nil
}

func activeUser(role domain.Role) *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Email:    string(role) + "@clinic.test",
		Role:     role,
		IsActive: true,
	}
}

func assertKind(t *testing.T, err error, want domain.Kind, msg string) {
	t.Helper()
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error, got %T (%v)", err, err)
	}
	if de.Kind != want {
		t.Fatalf("expected kind %s, got %s (%v)", want, de.Kind, err)
	}
	if msg != "" && de.Message != msg {
		t.Fatalf("expected message %q, got %q", msg, de.Message)
	}
}
