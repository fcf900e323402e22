package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
)

type stubAuthenticator struct {
	verifyFn  func(ctx context.Context, token string) (*domain.Identity, error)
	resolveFn func(ctx context.Context, identity *domain.Identity) (*domain.User, error)
}

func (s *stubAuthenticator) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	return s.verifyFn(ctx, token)
}

func (s *stubAuthenticator) Resolve(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	return s.resolveFn(ctx, identity)
}

// acceptToken returns an authenticator that admits want as a user with role.
func acceptToken(t *testing.T, want string, role domain.Role) *stubAuthenticator {
	t.Helper()
	id := uuid.New()
	return &stubAuthenticator{
		verifyFn: func(_ context.Context, token string) (*domain.Identity, error) {
			if token == "" {
				return nil, domain.Unauthenticated("No authentication token provided")
			}
			if token != want {
				return nil, domain.Unauthenticated("Invalid or expired token")
			}
			return &domain.Identity{ID: id, Email: "doc@example.com"}, nil
		},
		resolveFn: func(_ context.Context, identity *domain.Identity) (*domain.User, error) {
			return &domain.User{ID: identity.ID, Email: identity.Email, Role: role, IsActive: true}, nil
		},
	}
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractToken_HeaderBeforeCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
	c, _ := newContext(req)

	if got := ExtractToken(c); got != "header-token" {
		t.Fatalf("expected header token, got %q", got)
	}
}

func TestExtractToken_CookieFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
	c, _ := newContext(req)

	if got := ExtractToken(c); got != "cookie-token" {
		t.Fatalf("expected cookie token, got %q", got)
	}
}

func TestExtractToken_IgnoresNonBearerHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	c, _ := newContext(req)

	if got := ExtractToken(c); got != "" {
		t.Fatalf("expected no token, got %q", got)
	}
}

func TestAuthenticate_SetsPrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	c, rec := newContext(req)

	called := false
	h := Chain(Authenticate(acceptToken(t, "good", domain.RoleDoctor)))(func(c echo.Context) error {
		called = true
		p := PrincipalFrom(c)
		if p == nil || p.Role != domain.RoleDoctor {
			t.Fatalf("principal not set: %+v", p)
		}
		if PrincipalFromContext(c.Request().Context()) != p {
			t.Fatalf("principal missing from request context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	h := Chain(Authenticate(acceptToken(t, "good", domain.RoleAdmin)))(func(c echo.Context) error {
		t.Fatalf("handler must not run")
		return nil
	})

	err := h(c)
	if domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
	if err.Error() != "No authentication token provided" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAuthenticate_ResolverRejects(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	c, _ := newContext(req)

	authn := acceptToken(t, "good", domain.RoleAdmin)
	authn.resolveFn = func(context.Context, *domain.Identity) (*domain.User, error) {
		return nil, domain.Forbidden("Account is deactivated")
	}

	err := Chain(Authenticate(authn))(func(echo.Context) error {
		t.Fatalf("handler must not run")
		return nil
	})(c)
	if domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if PrincipalFrom(c) != nil {
		t.Fatalf("principal must not be set on failure")
	}
}
