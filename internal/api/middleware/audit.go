package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

// Audit records who touched which clinical resource. It runs after the
// handler so the event carries the final status, and only for callers
// that got past authentication. recorder may be nil.
func Audit(recorder ports.AuditRecorder, resource string, idParams ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if recorder == nil {
				return err
			}
			p := PrincipalFrom(c)
			if p == nil {
				return err
			}

			status := c.Response().Status
			if err != nil {
				status = ResolveStatus(err)
			}

			req := c.Request()
			recorder.Enqueue(domain.AuditEvent{
				ActorID:    p.ID.String(),
				ActorRole:  p.Role,
				Action:     action(req.Method, resourceID(c, idParams)),
				Resource:   resource,
				ResourceID: resourceID(c, idParams),
				Method:     req.Method,
				Path:       req.URL.Path,
				Status:     status,
				RequestID:  requestID(c),
				IP:         c.RealIP(),
				OccurredAt: time.Now().UTC(),
			})
			return err
		}
	}
}

func resourceID(c echo.Context, params []string) string {
	for _, name := range params {
		if v := c.Param(name); v != "" {
			return v
		}
	}
	return ""
}

func action(method, id string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	}
	if id == "" {
		return "list"
	}
	return "read"
}
