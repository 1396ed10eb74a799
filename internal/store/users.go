package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"moviefinder/internal/domain"
)

// UserStore holds registered accounts in memory, indexed by id and by
// lowercased email.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[int64]*domain.User
	byEmail map[string]int64
	ids     idAllocator
	now     Clock
}

// NewUserStore creates an empty user store.
func NewUserStore(now Clock) *UserStore {
	if now == nil {
		now = time.Now
	}
	return &UserStore{
		byID:    make(map[int64]*domain.User),
		byEmail: make(map[string]int64),
		now:     now,
	}
}

// Create registers a new account. Fails with ErrDuplicate when the email is
// already taken (case-insensitive).
func (s *UserStore) Create(name, email string, passwordHash []byte) (*domain.User, error) {
	key := emailKey(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[key]; taken {
		return nil, domain.ErrDuplicate
	}

	user := &domain.User{
		ID:           s.ids.Next(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}
	s.byID[user.ID] = user
	s.byEmail[key] = user.ID

	cp := *user
	return &cp, nil
}

// FindByID returns a copy of the user, or (nil, false) if unknown.
func (s *UserStore) FindByID(id int64) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	cp := *user
	return &cp, true
}

// FindByEmail returns a copy of the user with the given email, or
// (nil, false) if unknown. Lookup is case-insensitive.
func (s *UserStore) FindByEmail(email string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[emailKey(email)]
	if !ok {
		return nil, false
	}
	cp := *s.byID[id]
	return &cp, true
}

// Exists reports whether a user with the given id is registered.
func (s *UserStore) Exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byID[id]
	return ok
}

// List returns the public profile of every account, in registration order.
// Used by the community discovery endpoint.
func (s *UserStore) List() []domain.PublicProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]domain.PublicProfile, 0, len(s.byID))
	for _, user := range s.byID {
		profiles = append(profiles, user.Public())
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles
}

// Count returns the number of registered accounts.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
