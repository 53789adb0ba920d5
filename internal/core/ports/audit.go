package ports

import (
	"context"

	"github.com/pontocloud/ponto-console/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event domain.AuthEvent) error
	RecentEvents(ctx context.Context, limit int64) ([]domain.AuthEvent, error)
}

// AuditSink accepts audit events for asynchronous persistence. Record never
// blocks the caller on storage latency.
type AuditSink interface {
	Record(event domain.AuthEvent)
}
