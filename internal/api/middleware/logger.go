package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medoffice/office-api/pkg/logger"
)

// RequestLogger attaches a request-scoped logger to the request context
// and writes one entry per request. Errors are rendered here, through the
// error handler, so the logged status is the one the client received.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid := requestID(c)

			reqLog := log.With().Str("request_id", rid).Logger()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), reqLog)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			evt := reqLog.Info()
			switch {
			case status >= 500:
				evt = reqLog.Error().Err(err)
			case status >= 400:
				evt = reqLog.Warn()
			}
			if p := PrincipalFrom(c); p != nil {
				evt = evt.Str("user_id", p.ID.String()).Str("role", string(p.Role))
			}

			evt.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("request")

			return nil
		}
	}
}
