package ports

import "context"

// LoginThrottle limits failed login attempts per account.
type LoginThrottle interface {
	// Blocked reports whether the account has exhausted its attempt budget.
	Blocked(ctx context.Context, login string) (bool, error)
	// RecordFailure counts one failed attempt against the account.
	RecordFailure(ctx context.Context, login string) error
	// Reset clears the account's failure count after a successful login.
	Reset(ctx context.Context, login string) error
}
