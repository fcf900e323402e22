package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/medoffice/office-api/internal/core/domain"
)

func TestAuditQuery(t *testing.T) {
	if q := auditQuery(domain.AuditFilter{}); len(q) != 0 {
		t.Fatalf("empty filter must match everything, got %v", q)
	}

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.FixedZone("EST", -5*3600))
	q := auditQuery(domain.AuditFilter{
		ActorID:    "11111111-1111-4111-8111-111111111111",
		Resource:   "patient",
		ResourceID: "abc",
		Since:      since,
	})

	if q["actor_id"] != "11111111-1111-4111-8111-111111111111" || q["resource"] != "patient" || q["resource_id"] != "abc" {
		t.Fatalf("unexpected query: %v", q)
	}
	rng, ok := q["occurred_at"].(bson.M)
	if !ok {
		t.Fatalf("expected occurred_at range, got %v", q["occurred_at"])
	}
	gte, ok := rng["$gte"].(time.Time)
	if !ok || !gte.Equal(since) || gte.Location() != time.UTC {
		t.Fatalf("expected UTC lower bound, got %v", rng["$gte"])
	}
}
