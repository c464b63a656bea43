// Package session implements opaque cookie sessions backed by Redis.
// A session is a single key mapping an opaque token to a user id, expired
// by TTL; every validated request renews the key to slide the window.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "classdesk/internal/errors"
)

const sessionKeyPrefix = "session:"

// Cache is the subset of the Redis cache the session store needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Manager defines session lifecycle operations.
type Manager interface {
	Create(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Renew(ctx context.Context, token, userID string) error
	Destroy(ctx context.Context, token string) error
}

// Store is a Redis-backed session store.
type Store struct {
	cache Cache
	ttl   time.Duration
}

// Ensure Store implements Manager
var _ Manager = (*Store)(nil)

// NewStore creates a session store with the given TTL.
func NewStore(cache Cache, ttl time.Duration) *Store {
	return &Store{cache: cache, ttl: ttl}
}

// Create issues a fresh opaque token for the user and stores the mapping
// with the configured TTL.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, []byte(userID), s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Validate resolves a token to the user id it was issued for. Absent,
// malformed, unknown, and expired tokens all fail the same way.
func (s *Store) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperrors.ErrSessionInvalid
	}
	if _, err := uuid.Parse(token); err != nil {
		return "", apperrors.ErrSessionInvalid
	}
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil || len(data) == 0 {
		return "", apperrors.ErrSessionInvalid
	}
	return string(data), nil
}

// Renew re-stores the mapping with a full TTL, sliding the expiry window.
func (s *Store) Renew(ctx context.Context, token, userID string) error {
	return s.cache.Set(ctx, sessionKeyPrefix+token, []byte(userID), s.ttl)
}

// Destroy removes the session. Destroying an unknown token is not an
// error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}
