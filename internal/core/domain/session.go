package domain

import "time"

// Session is the record of the currently authenticated actor. Absence of a
// Session means the request is anonymous.
type Session struct {
	Login     string    `json:"login"`
	Role      Role      `json:"role"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether the session carries enough to prove identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.Role != ""
}

// Expired reports whether the session has outlived its TTL.
func (s *Session) Expired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
