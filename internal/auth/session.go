package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long a session stays valid after login.
const DefaultSessionTTL = 24 * time.Hour

// Session is an authenticated login, addressed by an opaque bearer token.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStore persists login sessions. Implementations: in-memory (default)
// and Redis-backed (shared across restarts).
type SessionStore interface {
	// Create mints a new session for the user.
	Create(ctx context.Context, userID int64) (*Session, error)
	// Get resolves a token to its session; (nil, nil) when the token is
	// unknown or expired.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete revokes a session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
	// DeleteExpired removes expired sessions and returns how many went away.
	DeleteExpired(ctx context.Context) (int, error)
}

// MemorySessionStore keeps sessions in a process-local map. Sessions are
// lost on restart, which matches the rest of the in-memory state.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore(ttl time.Duration, now func() time.Time) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &MemorySessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

// Create mints a new session for the user.
func (s *MemorySessionStore) Create(_ context.Context, userID int64) (*Session, error) {
	now := s.now()
	session := &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

// Get resolves a token to its session, treating expired sessions as absent.
func (s *MemorySessionStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok || s.now().After(session.ExpiresAt) {
		return nil, nil
	}
	cp := *session
	return &cp, nil
}

// Delete revokes a session.
func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// DeleteExpired sweeps out sessions past their expiry.
func (s *MemorySessionStore) DeleteExpired(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}
