package ports

import (
	"context"

	"github.com/identitykit/identity-service/internal/core/domain"
)

// AuditRepository persists audit records.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService processes a single audit event; implementations are invoked
// from the dispatcher's workers, never from request handlers directly.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts audit events for asynchronous processing. Enqueue must
// not block on store I/O; it hands the event to a background worker.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}
