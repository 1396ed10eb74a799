package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxPlaylistNameLength is the upper bound on a playlist name after trimming.
const MaxPlaylistNameLength = 50

// PlaylistEntry is a movie attached to a playlist, stamped with the moment it
// was added. Each attachment is its own copy of the catalog record.
type PlaylistEntry struct {
	MovieRef
	AddedAt time.Time `json:"addedAt"`
}

// Playlist is a named, owned, ordered collection of movies.
//
// Invariants upheld by the store:
//   - Name has trimmed length in [1, MaxPlaylistNameLength].
//   - Movies never holds two entries with the same movie id.
//   - OwnerID never changes after creation.
//   - UpdatedAt >= CreatedAt; every successful mutation refreshes UpdatedAt.
type Playlist struct {
	ID        int64           `json:"id"`
	OwnerID   int64           `json:"userId"`
	Name      string          `json:"name"`
	Movies    []PlaylistEntry `json:"movies"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NormalizePlaylistName trims the name and enforces the length rule.
// Returns the trimmed name to store.
func NormalizePlaylistName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewValidationError("name", "playlist name is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxPlaylistNameLength {
		return "", NewValidationError("name", "playlist name must be at most 50 characters")
	}
	return trimmed, nil
}

// HasMovie reports whether the playlist already contains the given movie id.
func (p *Playlist) HasMovie(movieID int64) bool {
	for _, entry := range p.Movies {
		if entry.ID == movieID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so callers can never observe or mutate the
// stored entity outside the store's lock.
func (p *Playlist) Clone() *Playlist {
	cp := *p
	cp.Movies = make([]PlaylistEntry, len(p.Movies))
	copy(cp.Movies, p.Movies)
	return &cp
}
