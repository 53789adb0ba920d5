package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pontocloud/ponto-console/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository persists the gateway's authentication audit trail.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Type   string `bson:"type"`
	Login  string `bson:"login,omitempty"`
	Role   string `bson:"role,omitempty"`
	Path   string `bson:"path,omitempty"`
	Reason string `bson:"reason,omitempty"`
	At     int64  `bson:"at"`
}

func (r *AuditRepository) InsertEvent(ctx context.Context, event domain.AuthEvent) error {
	doc := auditDoc{
		Type:   string(event.Type),
		Login:  event.Login,
		Role:   string(event.Role),
		Path:   event.Path,
		Reason: event.Reason,
		At:     event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

// RecentEvents returns the newest audit entries, newest first.
func (r *AuditRepository) RecentEvents(ctx context.Context, limit int64) ([]domain.AuthEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find auth events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuthEvent
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode auth event: %w", err)
		}
		events = append(events, domain.AuthEvent{
			Type:   domain.AuthEventType(doc.Type),
			Login:  doc.Login,
			Role:   domain.Role(doc.Role),
			Path:   doc.Path,
			Reason: doc.Reason,
			At:     time.Unix(doc.At, 0).UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate auth events: %w", err)
	}
	return events, nil
}
