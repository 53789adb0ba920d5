package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pontocloud/ponto-console/internal/core/domain"
)

// SessionStore persists sessions in Redis as two string-keyed records per
// session: the raw bearer token under ponto:token:<id> and the serialized
// identity under ponto:user:<id>. Both expire with the session TTL.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// userRecord is the serialized identity half of a stored session.
type userRecord struct {
	Login     string `json:"login"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}

func encodeUserRecord(s *domain.Session) ([]byte, error) {
	return json.Marshal(userRecord{
		Login:     s.Login,
		Role:      string(s.Role),
		CreatedAt: s.CreatedAt.Unix(),
		ExpiresAt: s.ExpiresAt.Unix(),
	})
}

// decodeUserRecord rebuilds a session (minus token) from a stored record.
// The role tag is re-validated here: hydration is one of the two points where
// role data enters the system.
func decodeUserRecord(data []byte) (*domain.Session, error) {
	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, domain.ErrSessionCorrupt
	}
	role, err := domain.ParseRole(rec.Role)
	if err != nil || rec.Login == "" {
		return nil, domain.ErrSessionCorrupt
	}
	return &domain.Session{
		Login:     rec.Login,
		Role:      role,
		CreatedAt: time.Unix(rec.CreatedAt, 0).UTC(),
		ExpiresAt: time.Unix(rec.ExpiresAt, 0).UTC(),
	}, nil
}

func (s *SessionStore) Put(ctx context.Context, id string, session *domain.Session) error {
	data, err := encodeUserRecord(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey(id), session.Token, ttl)
	pipe.Set(ctx, userKey(id), data, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	values, err := s.client.MGet(ctx, tokenKey(id), userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	token, tokenOK := values[0].(string)
	userData, userOK := values[1].(string)
	if !tokenOK || !userOK {
		// Half a session is no session; drop any leftover key.
		s.discard(ctx, id)
		return nil, domain.ErrSessionNotFound
	}

	session, err := decodeUserRecord([]byte(userData))
	if err != nil {
		// Stale or mangled record: discard it and treat the caller as logged
		// out rather than guessing at an identity.
		s.discard(ctx, id)
		return nil, err
	}
	session.Token = token
	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, tokenKey(id), userKey(id)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) discard(ctx context.Context, id string) {
	_ = s.client.Del(ctx, tokenKey(id), userKey(id)).Err()
}

func tokenKey(id string) string { return "ponto:token:" + id }
func userKey(id string) string  { return "ponto:user:" + id }
