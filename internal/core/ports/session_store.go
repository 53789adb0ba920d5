package ports

import (
	"context"

	"github.com/pontocloud/ponto-console/internal/core/domain"
)

// SessionStore persists Sessions keyed by an opaque session ID. The session
// service is the only writer; everything else reads through SessionService.
type SessionStore interface {
	// Put stores the session under id with the session's remaining lifetime.
	Put(ctx context.Context, id string, session *domain.Session) error
	// Get loads the session stored under id. Returns domain.ErrSessionNotFound
	// when no record exists and domain.ErrSessionCorrupt when the record could
	// not be parsed (the store discards the record before returning).
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete removes the session. Deleting an absent session is a no-op.
	Delete(ctx context.Context, id string) error
}
