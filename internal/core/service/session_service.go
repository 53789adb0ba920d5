package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pontocloud/ponto-console/internal/core/domain"
	"github.com/pontocloud/ponto-console/internal/core/ports"
)

const defaultSessionTTL = 8 * time.Hour

// SessionService owns the Session lifecycle: it authenticates against the
// upstream backend, persists the resulting Session, and hydrates it back on
// later requests. The session ID travels in a signed cookie (HS256 JWT whose
// subject is the ID); the bearer token itself never leaves the server.
type SessionService struct {
	auth     ports.Authenticator
	store    ports.SessionStore
	throttle ports.LoginThrottle
	audit    ports.AuditSink
	secret   []byte
	ttl      time.Duration
}

func NewSessionService(auth ports.Authenticator, store ports.SessionStore, throttle ports.LoginThrottle, audit ports.AuditSink, secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		auth:     auth,
		store:    store,
		throttle: throttle,
		audit:    audit,
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

// Login authenticates the credentials upstream and, on success, persists a
// Session and returns it with its signed cookie value. Success and failure are
// atomic: no partial session is ever stored or returned.
func (s *SessionService) Login(ctx context.Context, login, senha string) (*domain.Session, string, error) {
	if login == "" || senha == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		// Throttle outages fail open: login availability wins over rate
		// limiting when Redis is down.
		if blocked, err := s.throttle.Blocked(ctx, login); err == nil && blocked {
			s.record(domain.AuthEvent{Type: domain.AuthEventLoginFailed, Login: login, Reason: "throttled"})
			return nil, "", domain.ErrTooManyAttempts
		}
	}

	result, err := s.auth.Authenticate(ctx, ports.Credentials{Login: login, Senha: senha})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) && s.throttle != nil {
			_ = s.throttle.RecordFailure(ctx, login)
		}
		s.record(domain.AuthEvent{Type: domain.AuthEventLoginFailed, Login: login, Reason: reason(err)})
		return nil, "", err
	}

	role, err := domain.ParseRole(result.Role)
	if err != nil {
		s.record(domain.AuthEvent{Type: domain.AuthEventLoginFailed, Login: login, Reason: "unknown_role"})
		return nil, "", fmt.Errorf("upstream returned role %q: %w", result.Role, err)
	}

	now := time.Now().UTC()
	session := &domain.Session{
		Login:     result.Login,
		Role:      role,
		Token:     result.Token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	id := uuid.NewString()
	if err := s.store.Put(ctx, id, session); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, login)
	}
	s.record(domain.AuthEvent{Type: domain.AuthEventLoginSuccess, Login: session.Login, Role: session.Role})

	cookie, err := s.signCookie(id, session.ExpiresAt)
	if err != nil {
		_ = s.store.Delete(ctx, id)
		return nil, "", fmt.Errorf("sign session cookie: %w", err)
	}
	return session, cookie, nil
}

// Logout destroys the session behind the cookie value. Calling it with no
// active session, or with a garbage cookie, is a no-op.
func (s *SessionService) Logout(ctx context.Context, cookieValue string) error {
	id, ok := s.verifyCookie(cookieValue)
	if !ok {
		return nil
	}

	session, err := s.store.Get(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) && !errors.Is(err, domain.ErrSessionCorrupt) {
		return fmt.Errorf("load session: %w", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if session != nil {
		s.record(domain.AuthEvent{Type: domain.AuthEventLogout, Login: session.Login, Role: session.Role})
	}
	return nil
}

// Current hydrates the session behind the cookie value. Every way a record can
// be unusable (absent, unparseable cookie, corrupt or expired record) resolves
// to anonymous, never to a wrong identity. Only a store outage is an error.
func (s *SessionService) Current(ctx context.Context, cookieValue string) (*domain.Session, error) {
	id, ok := s.verifyCookie(cookieValue)
	if !ok {
		return nil, nil
	}

	session, err := s.store.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionCorrupt):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		_ = s.store.Delete(ctx, id)
		return nil, nil
	}
	return session, nil
}

func (s *SessionService) signCookie(id string, expires time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// verifyCookie extracts the session ID from a signed cookie value. Any parse
// or signature failure means the caller is anonymous.
func (s *SessionService) verifyCookie(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	claims := jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(value, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func (s *SessionService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.At = time.Now().UTC()
	s.audit.Record(event)
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	default:
		return "error"
	}
}
