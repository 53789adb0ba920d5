package domain

import "time"

// AuthEventType tags entries in the authentication audit trail.
type AuthEventType string

const (
	AuthEventLoginSuccess     AuthEventType = "login_success"
	AuthEventLoginFailed      AuthEventType = "login_failed"
	AuthEventLogout           AuthEventType = "logout"
	AuthEventNavigationDenied AuthEventType = "navigation_denied"
)

// AuthEvent is one entry in the audit trail the gateway keeps of logins,
// logouts and denied navigations.
type AuthEvent struct {
	Type   AuthEventType `json:"type"`
	Login  string        `json:"login,omitempty"`
	Role   Role          `json:"role,omitempty"`
	Path   string        `json:"path,omitempty"`
	Reason string        `json:"reason,omitempty"`
	At     time.Time     `json:"at"`
}
