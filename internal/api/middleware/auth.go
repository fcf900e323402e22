package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/api/metrics"
	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
	"github.com/medoffice/office-api/pkg/logger"
)

// SessionCookie is the cookie set at login.
const SessionCookie = "sb-access-token"

const principalKey = "principal"

type principalCtxKey struct{}

// ExtractToken returns the bearer token, preferring the Authorization
// header over the session cookie. A header that is present but not a
// Bearer credential is ignored.
func ExtractToken(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			if token = strings.TrimSpace(token); token != "" {
				return token
			}
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// Authenticate runs the session verifier and the identity resolver and
// stores the resulting principal in the echo and request contexts.
func Authenticate(authn ports.Authenticator) Stage {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		identity, err := authn.Verify(ctx, ExtractToken(c))
		if err != nil {
			return authFailure(c, err)
		}
		user, err := authn.Resolve(ctx, identity)
		if err != nil {
			return authFailure(c, err)
		}

		SetPrincipal(c, domain.NewPrincipal(user))
		return nil
	}
}

func authFailure(c echo.Context, err error) error {
	kind := domain.KindOf(err)
	metrics.AuthFailuresTotal.WithLabelValues(kind.String()).Inc()
	logger.Ctx(c.Request().Context()).Warn().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("authentication failed")
	return err
}

// SetPrincipal attaches p to the request.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), principalCtxKey{}, p)))
}

// PrincipalFrom returns the authenticated caller, or nil.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

// PrincipalFromContext returns the caller stored in a request context.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalCtxKey{}).(*domain.Principal)
	return p
}
