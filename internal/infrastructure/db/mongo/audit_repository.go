package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/identitykit/identity-service/internal/core/domain"
)

const collectionAudit = "auth_events"

// auditRetention bounds how long audit records are kept; enforced by a TTL
// index on the timestamp field.
const auditRetention = 90 * 24 * time.Hour

// AuditRepository appends audit records to the auth_events collection.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

type auditDoc struct {
	Actor     string    `bson:"actor,omitempty"`
	Action    string    `bson:"action"`
	Subject   string    `bson:"subject"`
	Outcome   string    `bson:"outcome"`
	Detail    string    `bson:"detail,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		Actor:     event.Actor,
		Action:    event.Action,
		Subject:   event.Subject,
		Outcome:   event.Outcome,
		Detail:    event.Detail,
		Timestamp: event.Timestamp,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the TTL index that expires old audit records.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(auditRetention / time.Second)),
	})
	return err
}
