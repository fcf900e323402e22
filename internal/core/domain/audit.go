package domain

import "time"

// AuditEvent records one access to protected health information.
type AuditEvent struct {
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	ActorRole  Role      `json:"actor_role" bson:"actor_role"`
	Action     string    `json:"action" bson:"action"`
	Resource   string    `json:"resource" bson:"resource"`
	ResourceID string    `json:"resource_id,omitempty" bson:"resource_id,omitempty"`
	Method     string    `json:"method" bson:"method"`
	Path       string    `json:"path" bson:"path"`
	Status     int       `json:"status" bson:"status"`
	RequestID  string    `json:"request_id,omitempty" bson:"request_id,omitempty"`
	IP         string    `json:"ip,omitempty" bson:"ip,omitempty"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}

// AuditFilter narrows an audit trail query. Empty fields match everything.
type AuditFilter struct {
	ActorID    string
	Resource   string
	ResourceID string
	Since      time.Time
	Page       int
	PageSize   int
}

// Offset returns the zero-based document offset of the page.
func (f AuditFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
