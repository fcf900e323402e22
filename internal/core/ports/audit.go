package ports

import (
	"context"

	"github.com/medoffice/office-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuditEvent) error
}

// AuditReader queries the audit trail, newest first.
type AuditReader interface {
	ListEvents(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEvent, int, error)
}

// AuditRecorder accepts events without blocking the request that caused them.
type AuditRecorder interface {
	Enqueue(event domain.AuditEvent)
}

// AuditPage is one page of the audit trail.
type AuditPage struct {
	Items      []*domain.AuditEvent
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

type AuditService interface {
	List(ctx context.Context, filter domain.AuditFilter) (*AuditPage, error)
}
