package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medoffice/office-api/internal/core/domain"
)

type recordingRecorder struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recordingRecorder) Enqueue(event domain.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestAudit_RecordsAuthenticatedAccess(t *testing.T) {
	rec := &recordingRecorder{}
	req := httptest.NewRequest(http.MethodGet, "/api/patients/550e8400-e29b-41d4-a716-446655440000", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	c, _ := newContext(req)
	c.SetParamNames("id")
	c.SetParamValues("550e8400-e29b-41d4-a716-446655440000")

	err := Audit(rec, "patient", "id")(func(c echo.Context) error {
		withPrincipal(c, domain.RoleReceptionist)
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected one event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Action != "read" || ev.Resource != "patient" || ev.ResourceID != "550e8400-e29b-41d4-a716-446655440000" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Status != http.StatusOK || ev.ActorRole != domain.RoleReceptionist || ev.RequestID != "req-1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestAudit_UsesErrorStatus(t *testing.T) {
	rec := &recordingRecorder{}
	c, _ := newContext(httptest.NewRequest(http.MethodPost, "/api/patients", nil))

	want := domain.InvalidInput("Validation failed", nil)
	err := Audit(rec, "patient", "id")(func(c echo.Context) error {
		withPrincipal(c, domain.RoleAdmin)
		return want
	})(c)
	if err != want {
		t.Fatalf("error must pass through, got %v", err)
	}
	if len(rec.events) != 1 || rec.events[0].Status != http.StatusBadRequest || rec.events[0].Action != "create" {
		t.Fatalf("unexpected events: %+v", rec.events)
	}
}

func TestAudit_SkipsAnonymousAndNilRecorder(t *testing.T) {
	rec := &recordingRecorder{}
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/api/patients", nil))

	_ = Audit(rec, "patient")(func(echo.Context) error {
		return domain.Unauthenticated("No authentication token provided")
	})(c)
	if len(rec.events) != 0 {
		t.Fatalf("anonymous request must not be audited: %+v", rec.events)
	}

	err := Audit(nil, "patient")(func(c echo.Context) error {
		withPrincipal(c, domain.RoleAdmin)
		return nil
	})(c)
	if err != nil {
		t.Fatalf("nil recorder must be a no-op, got %v", err)
	}
}

func TestAction(t *testing.T) {
	tests := []struct {
		method, id, want string
	}{
		{http.MethodGet, "", "list"},
		{http.MethodGet, "x", "read"},
		{http.MethodPost, "", "create"},
		{http.MethodPatch, "x", "update"},
		{http.MethodPut, "x", "update"},
		{http.MethodDelete, "x", "delete"},
	}
	for _, tt := range tests {
		if got := action(tt.method, tt.id); got != tt.want {
			t.Fatalf("%s %q: expected %s, got %s", tt.method, tt.id, tt.want, got)
		}
	}
}
