package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

// Stage is one step of the request pipeline. Returning nil continues with
// the next stage; any error ends the request and goes to the error handler.
// Stages pass data forward through the echo context.
type Stage func(c echo.Context) error

// Chain runs stages in order before the handler. The first failing stage
// stops the pipeline; the handler never runs after a failure.
func Chain(stages ...Stage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, stage := range stages {
				if err := stage(c); err != nil {
					return err
				}
			}
			return next(c)
		}
	}
}

// Guard is the usual prefix of a protected route: authenticate, then check
// the caller's role.
func Guard(authn ports.Authenticator, roles ...domain.Role) []Stage {
	return []Stage{Authenticate(authn), Authorize(roles...)}
}
