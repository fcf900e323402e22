package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
)

type statusCodeErr int

func (e statusCodeErr) Error() string   { return "upstream" }
func (e statusCodeErr) StatusCode() int { return int(e) }

type codeErr string

func (e codeErr) Error() string { return "coded" }
func (e codeErr) Code() string  { return string(e) }

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"taxonomy kind", domain.NotFound("Patient not found"), http.StatusNotFound},
		{"wrapped taxonomy kind", fmt.Errorf("load: %w", domain.Conflict("dup", nil)), http.StatusConflict},
		{"upstream kind", domain.Upstream("provider down", errors.New("eof")), http.StatusBadGateway},
		{"status code", statusCodeErr(422), http.StatusUnprocessableEntity},
		{"status code out of range", statusCodeErr(200), http.StatusInternalServerError},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed},
		{"numeric code", codeErr("429"), http.StatusTooManyRequests},
		{"non numeric code", codeErr("PGRST116"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStatus(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
