package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces session keys in Redis.
const sessionKeyPrefix = "moviefinder:session:"

// RedisSessionStore keeps sessions in Redis so logins survive restarts.
// Expiry is delegated to Redis key TTLs.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration, now func() time.Time) *RedisSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &RedisSessionStore{client: client, ttl: ttl, now: now}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Create mints a new session and stores it with the configured TTL.
func (s *RedisSessionStore) Create(ctx context.Context, userID int64) (*Session, error) {
	now := s.now()
	session := &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.Token), data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Get resolves a token to its session; (nil, nil) on a miss.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete revokes a session.
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts sessions through key TTLs.
func (s *RedisSessionStore) DeleteExpired(context.Context) (int, error) {
	return 0, nil
}
