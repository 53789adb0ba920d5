package ports

import (
	"context"

	"github.com/pontocloud/ponto-console/internal/core/domain"
)

// SessionService is the single source of truth for "who is logged in". It is
// the only component allowed to create, persist or clear a Session; handlers
// and middleware read through it.
type SessionService interface {
	// Login authenticates against the upstream backend. On success it persists
	// a Session and returns it together with the signed cookie value that
	// identifies it on later requests. On failure nothing is persisted.
	Login(ctx context.Context, login, senha string) (*domain.Session, string, error)
	// Logout destroys the session identified by the cookie value. Idempotent:
	// an absent or garbage cookie is a no-op.
	Logout(ctx context.Context, cookieValue string) error
	// Current hydrates the session identified by the cookie value. An absent,
	// garbage, corrupt or expired record yields (nil, nil): the caller is
	// anonymous. A store outage yields an error so callers can distinguish
	// "logged out" from "cannot tell right now".
	Current(ctx context.Context, cookieValue string) (*domain.Session, error)
}
