package store

import (
	"sync"
	"time"

	"moviefinder/internal/domain"
)

// FavoriteStore holds every user's favorites in memory, keyed by user id.
// A user's favorites are an insertion-ordered set deduplicated by movie id.
type FavoriteStore struct {
	mu     sync.RWMutex
	byUser map[int64][]domain.Favorite
	now    Clock
}

// NewFavoriteStore creates an empty favorite store.
func NewFavoriteStore(now Clock) *FavoriteStore {
	if now == nil {
		now = time.Now
	}
	return &FavoriteStore{
		byUser: make(map[int64][]domain.Favorite),
		now:    now,
	}
}

// List returns the user's favorites in the order they were added. Empty
// slice, never nil, when the user has none.
func (s *FavoriteStore) List(userID int64) []domain.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := s.byUser[userID]
	out := make([]domain.Favorite, len(favorites))
	copy(out, favorites)
	return out
}

// Add appends the movie to the user's favorites. Fails with ErrDuplicate
// when the movie id is already saved; nothing is mutated on failure.
func (s *FavoriteStore) Add(userID int64, movie domain.MovieRef) (domain.Favorite, error) {
	if err := movie.Validate(); err != nil {
		return domain.Favorite{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, favorite := range s.byUser[userID] {
		if favorite.ID == movie.ID {
			return domain.Favorite{}, domain.ErrDuplicate
		}
	}

	favorite := domain.Favorite{MovieRef: movie, AddedAt: s.now()}
	s.byUser[userID] = append(s.byUser[userID], favorite)
	return favorite, nil
}

// Remove deletes the favorite with the given movie id. Returns whether a
// removal happened; removing an absent favorite is not an error.
func (s *FavoriteStore) Remove(userID, movieID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := s.byUser[userID]
	for i, favorite := range favorites {
		if favorite.ID == movieID {
			s.byUser[userID] = append(favorites[:i], favorites[i+1:]...)
			return true
		}
	}
	return false
}

// IsFavorite reports whether the user has saved the movie.
func (s *FavoriteStore) IsFavorite(userID, movieID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, favorite := range s.byUser[userID] {
		if favorite.ID == movieID {
			return true
		}
	}
	return false
}
