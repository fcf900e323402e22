package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/api/metrics"
	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/pkg/logger"
)

const (
	msgNotAuthenticated        = "Not authenticated"
	msgInsufficientPermissions = "Insufficient permissions"
)

// Authorize admits callers whose role is in roles. It must run after
// Authenticate; without a principal the request is unauthenticated.
func Authorize(roles ...domain.Role) Stage {
	allowed := domain.NewRoleSet(roles...)

	return func(c echo.Context) error {
		p := PrincipalFrom(c)
		if p == nil {
			metrics.AuthzDeniedTotal.WithLabelValues("anonymous").Inc()
			return domain.Unauthenticated(msgNotAuthenticated)
		}
		if !allowed.Contains(p.Role) {
			metrics.AuthzDeniedTotal.WithLabelValues(string(p.Role)).Inc()
			logger.Ctx(c.Request().Context()).Warn().
				Str("user_id", p.ID.String()).
				Str("role", string(p.Role)).
				Str("required", allowed.String()).
				Str("path", c.Path()).
				Msg("insufficient permissions")
			return domain.Forbidden(msgInsufficientPermissions)
		}
		return nil
	}
}
