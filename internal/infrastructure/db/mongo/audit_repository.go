package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medoffice/office-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository stores the access audit trail. It implements
// ports.AuditRepository and ports.AuditReader.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(auditCollection)}
}

// InsertEvent appends an event to the audit_events collection. The trail is
// append-only; events are never updated.
func (r *AuditRepository) InsertEvent(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *event
	if doc.OccurredAt.IsZero() {
		doc.OccurredAt = time.Now()
	}
	doc.OccurredAt = doc.OccurredAt.UTC()

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// ListEvents returns one page of events matching filter, newest first, and
// the total number of matches.
func (r *AuditRepository) ListEvents(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEvent, int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := auditQuery(filter)
	total, err := r.col.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetSkip(int64(filter.Offset())).
		SetLimit(int64(filter.PageSize))
	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	events := make([]*domain.AuditEvent, 0, filter.PageSize)
	if err := cur.All(ctx, &events); err != nil {
		return nil, 0, err
	}
	return events, int(total), nil
}

func auditQuery(f domain.AuditFilter) bson.M {
	q := bson.M{}
	if f.ActorID != "" {
		q["actor_id"] = f.ActorID
	}
	if f.Resource != "" {
		q["resource"] = f.Resource
	}
	if f.ResourceID != "" {
		q["resource_id"] = f.ResourceID
	}
	if !f.Since.IsZero() {
		q["occurred_at"] = bson.M{"$gte": f.Since.UTC()}
	}
	return q
}
