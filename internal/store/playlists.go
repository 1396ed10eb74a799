package store

import (
	"sort"
	"sync"
	"time"

	"moviefinder/internal/domain"
)

// PlaylistStore holds every playlist in memory, keyed by playlist id.
// State lives for the lifetime of the process.
//
// Each mutation runs the full sequence (existence -> ownership -> validation
// -> mutate -> bump UpdatedAt) inside one critical section, so operations are
// atomic with respect to each other. Reads return deep copies and never hand
// out a pointer into the store.
type PlaylistStore struct {
	mu        sync.RWMutex
	playlists map[int64]*domain.Playlist
	ids       idAllocator
	now       Clock
}

// NewPlaylistStore creates an empty playlist store.
func NewPlaylistStore(now Clock) *PlaylistStore {
	if now == nil {
		now = time.Now
	}
	return &PlaylistStore{
		playlists: make(map[int64]*domain.Playlist),
		now:       now,
	}
}

// Create validates the name, allocates a fresh id and stores a new empty
// playlist owned by ownerID.
func (s *PlaylistStore) Create(ownerID int64, name string) (*domain.Playlist, error) {
	trimmed, err := domain.NormalizePlaylistName(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	playlist := &domain.Playlist{
		ID:        s.ids.Next(),
		OwnerID:   ownerID,
		Name:      trimmed,
		Movies:    []domain.PlaylistEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.playlists[playlist.ID] = playlist

	return playlist.Clone(), nil
}

// GetByID returns a copy of the playlist, or (nil, false) if absent.
// No ownership check: callers decide whether the result may be exposed.
func (s *PlaylistStore) GetByID(playlistID int64) (*domain.Playlist, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlist, ok := s.playlists[playlistID]
	if !ok {
		return nil, false
	}
	return playlist.Clone(), true
}

// ListByOwner returns all playlists owned by ownerID, in creation order.
func (s *PlaylistStore) ListByOwner(ownerID int64) []*domain.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]*domain.Playlist, 0)
	for _, playlist := range s.playlists {
		if playlist.OwnerID == ownerID {
			owned = append(owned, playlist.Clone())
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	return owned
}

// IsOwner reports whether userID owns the playlist. False, not an error,
// when the playlist does not exist.
func (s *PlaylistStore) IsOwner(playlistID, userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlist, ok := s.playlists[playlistID]
	return ok && playlist.OwnerID == userID
}

// Rename updates the playlist name. Fails with ErrNotFound, ErrForbidden or
// a ValidationError, in that order of precedence.
func (s *PlaylistStore) Rename(playlistID, userID int64, name string) (*domain.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	playlist, err := s.ownedLocked(playlistID, userID)
	if err != nil {
		return nil, err
	}

	trimmed, err := domain.NormalizePlaylistName(name)
	if err != nil {
		return nil, err
	}

	playlist.Name = trimmed
	playlist.UpdatedAt = s.now()

	return playlist.Clone(), nil
}

// Delete removes the playlist. Returns false (no error) when it does not
// exist, so a repeated delete is harmless. Only the owner may delete.
func (s *PlaylistStore) Delete(playlistID, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	playlist, ok := s.playlists[playlistID]
	if !ok {
		return false, nil
	}
	if playlist.OwnerID != userID {
		return false, domain.ErrForbidden
	}

	delete(s.playlists, playlistID)
	return true, nil
}

// AddMovie appends the movie to the playlist. Fails with ErrDuplicate when
// the movie id is already present; the playlist is untouched on any failure.
func (s *PlaylistStore) AddMovie(playlistID, userID int64, movie domain.MovieRef) (*domain.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	playlist, err := s.ownedLocked(playlistID, userID)
	if err != nil {
		return nil, err
	}

	if err := movie.Validate(); err != nil {
		return nil, err
	}
	if playlist.HasMovie(movie.ID) {
		return nil, domain.ErrDuplicate
	}

	now := s.now()
	playlist.Movies = append(playlist.Movies, domain.PlaylistEntry{MovieRef: movie, AddedAt: now})
	playlist.UpdatedAt = now

	return playlist.Clone(), nil
}

// RemoveMovie removes the movie from the playlist, preserving the relative
// order of the remaining entries. Returns false (no error) when the movie is
// not in the playlist.
func (s *PlaylistStore) RemoveMovie(playlistID, userID, movieID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	playlist, err := s.ownedLocked(playlistID, userID)
	if err != nil {
		return false, err
	}

	for i, entry := range playlist.Movies {
		if entry.ID == movieID {
			playlist.Movies = append(playlist.Movies[:i], playlist.Movies[i+1:]...)
			playlist.UpdatedAt = s.now()
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of stored playlists.
func (s *PlaylistStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.playlists)
}

// ownedLocked resolves the playlist and checks ownership. Existence is
// checked before ownership so a missing playlist is never reported as
// forbidden. Caller must hold the write lock.
func (s *PlaylistStore) ownedLocked(playlistID, userID int64) (*domain.Playlist, error) {
	playlist, ok := s.playlists[playlistID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if playlist.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	return playlist, nil
}
