package supabase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/auth-go/types"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

var _ ports.IdentityProvider = (*Client)(nil)

func identityOf(u types.User) (*domain.Identity, error) {
	if u.ID == uuid.Nil {
		return nil, errors.New("supabase: response carried no user id")
	}
	return &domain.Identity{ID: u.ID, Email: u.Email}, nil
}

// SignUp creates an identity with metadata stored as user_metadata. The
// API answers with a session when email confirmation is off and a bare
// user otherwise; auth-go folds both into the embedded User.
func (c *Client) SignUp(_ context.Context, email, password string, metadata map[string]any) (*domain.Identity, error) {
	out, err := c.auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		return nil, wrapError("signup", err)
	}
	return identityOf(out.User)
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(_ context.Context, email, password string) (*ports.ProviderSession, error) {
	out, err := c.auth.Token(types.TokenRequest{
		GrantType: "password",
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return nil, wrapError("sign in", err)
	}
	if out.AccessToken == "" {
		return nil, errors.New("supabase: sign in returned no session")
	}
	identity, err := identityOf(out.User)
	if err != nil {
		return nil, err
	}

	expires := time.Unix(out.ExpiresAt, 0)
	if out.ExpiresAt == 0 {
		expires = time.Now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	return &ports.ProviderSession{
		AccessToken: out.AccessToken,
		ExpiresAt:   expires,
		Identity:    *identity,
	}, nil
}

// SignOut ends the session that owns token.
func (c *Client) SignOut(_ context.Context, token string) error {
	return wrapError("sign out", c.auth.WithToken(token).Logout())
}

// VerifyToken resolves an access token to its identity, locally when a JWT
// secret is configured and with one call to the API otherwise.
func (c *Client) VerifyToken(_ context.Context, token string) (*domain.Identity, error) {
	if c.verifier != nil {
		return c.verifier.verify(token)
	}

	out, err := c.auth.WithToken(token).GetUser()
	if err != nil {
		return nil, wrapError("get user", err)
	}
	return identityOf(out.User)
}

// DeleteUser removes an identity. Requires the service role key.
func (c *Client) DeleteUser(_ context.Context, id uuid.UUID) error {
	admin, err := c.admin()
	if err != nil {
		return err
	}
	return wrapError("delete user", admin.AdminDeleteUser(types.AdminDeleteUserRequest{UserID: id}))
}

// UpdateUser changes credential fields of an identity. Requires the
// service role key.
func (c *Client) UpdateUser(_ context.Context, id uuid.UUID, attrs ports.IdentityAttributes) error {
	if attrs.Email == nil && attrs.Password == nil {
		return nil
	}
	admin, err := c.admin()
	if err != nil {
		return err
	}

	req := types.AdminUpdateUserRequest{UserID: id}
	if attrs.Email != nil {
		req.Email = *attrs.Email
		req.EmailConfirm = true
	}
	if attrs.Password != nil {
		req.Password = *attrs.Password
	}
	_, err = admin.AdminUpdateUser(req)
	return wrapError("update user", err)
}
