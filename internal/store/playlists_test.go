package store

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"moviefinder/internal/domain"
)

// tickingClock returns a Clock that advances one second per call, so every
// mutation gets a strictly later timestamp.
func tickingClock() Clock {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	var calls int64
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := NewPlaylistStore(tickingClock())

	first, err := s.Create(1, "Action")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	second, err := s.Create(1, "Drama")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if first.ID <= 0 {
		t.Errorf("expected positive id, got %d", first.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("ids not monotonic: %d then %d", first.ID, second.ID)
	}
	if first.OwnerID != 1 {
		t.Errorf("OwnerID = %d, want 1", first.OwnerID)
	}
	if len(first.Movies) != 0 {
		t.Errorf("new playlist should have no movies, got %d", len(first.Movies))
	}
	if first.UpdatedAt.Before(first.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", first.UpdatedAt, first.CreatedAt)
	}
}

func TestCreateTrimsName(t *testing.T) {
	s := NewPlaylistStore(tickingClock())

	p, err := s.Create(1, "  Weekend Picks  ")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if p.Name != "Weekend Picks" {
		t.Errorf("Name = %q, want trimmed %q", p.Name, "Weekend Picks")
	}
}

func TestCreateNameValidationBoundary(t *testing.T) {
	s := NewPlaylistStore(tickingClock())

	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"blank", " ", true},
		{"single char", "a", false},
		{"exactly 50", strings.Repeat("a", 50), false},
		{"51 chars", strings.Repeat("a", 51), true},
		{"blank padding around 50", " " + strings.Repeat("a", 50) + " ", false},
		{"exactly 50 multibyte chars", strings.Repeat("é", 50), false},
		{"51 multibyte chars", strings.Repeat("é", 51), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(1, tc.input)
			if tc.wantErr {
				if !domain.IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetByIDReturnsCopy(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	created, _ := s.Create(1, "Action")

	got, ok := s.GetByID(created.ID)
	if !ok {
		t.Fatal("playlist not found")
	}

	// Mutating the returned value must not affect the store.
	got.Name = "tampered"
	got.OwnerID = 99

	again, _ := s.GetByID(created.ID)
	if again.Name != "Action" || again.OwnerID != 1 {
		t.Errorf("store state leaked through returned copy: %+v", again)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	if _, ok := s.GetByID(42); ok {
		t.Error("expected absent playlist to report ok=false")
	}
}

func TestListByOwnerFiltersAndOrders(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	a1, _ := s.Create(1, "First")
	_, _ = s.Create(2, "Other user")
	a2, _ := s.Create(1, "Second")

	owned := s.ListByOwner(1)
	if len(owned) != 2 {
		t.Fatalf("ListByOwner returned %d playlists, want 2", len(owned))
	}
	if owned[0].ID != a1.ID || owned[1].ID != a2.ID {
		t.Errorf("playlists not in creation order: %d, %d", owned[0].ID, owned[1].ID)
	}
}

func TestIsOwner(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	if !s.IsOwner(p.ID, 1) {
		t.Error("owner not recognised")
	}
	if s.IsOwner(p.ID, 2) {
		t.Error("non-owner reported as owner")
	}
	if s.IsOwner(999, 1) {
		t.Error("missing playlist should report false, not true")
	}
}

func TestRename(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	renamed, err := s.Rename(p.ID, 1, "  Best Action  ")
	if err != nil {
		t.Fatalf("rename returned error: %v", err)
	}
	if renamed.Name != "Best Action" {
		t.Errorf("Name = %q, want %q", renamed.Name, "Best Action")
	}
	if !renamed.UpdatedAt.After(p.UpdatedAt) {
		t.Errorf("UpdatedAt not bumped: %v -> %v", p.UpdatedAt, renamed.UpdatedAt)
	}
	if renamed.OwnerID != p.OwnerID {
		t.Errorf("OwnerID changed on rename: %d -> %d", p.OwnerID, renamed.OwnerID)
	}
}

func TestRenameErrorPrecedence(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	// Missing playlist wins over everything else.
	if _, err := s.Rename(999, 2, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	// Ownership is checked before validation.
	if _, err := s.Rename(p.ID, 2, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, err := s.Rename(p.ID, 1, ""); !domain.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	// Failed attempts must not have touched the playlist.
	got, _ := s.GetByID(p.ID)
	if got.Name != "Action" {
		t.Errorf("failed rename mutated playlist: %q", got.Name)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	deleted, err := s.Delete(p.ID, 1)
	if err != nil || !deleted {
		t.Fatalf("first delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = s.Delete(p.ID, 1)
	if err != nil || deleted {
		t.Fatalf("second delete = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestDeleteForbiddenForNonOwner(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	if _, err := s.Delete(p.ID, 2); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := s.GetByID(p.ID); !ok {
		t.Error("forbidden delete removed the playlist")
	}
}

func TestAddMovieDeduplicatesByID(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	movie := domain.MovieRef{ID: 42, Title: "Mad Max"}
	updated, err := s.AddMovie(p.ID, 1, movie)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if len(updated.Movies) != 1 {
		t.Fatalf("playlist has %d movies, want 1", len(updated.Movies))
	}
	if updated.Movies[0].AddedAt.IsZero() {
		t.Error("entry missing AddedAt stamp")
	}

	// Same id with different display fields is still the same movie.
	stale := domain.MovieRef{ID: 42, Title: "Mad Max: Fury Road"}
	if _, err := s.AddMovie(p.ID, 1, stale); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	got, _ := s.GetByID(p.ID)
	if len(got.Movies) != 1 {
		t.Errorf("duplicate add mutated playlist: %d movies", len(got.Movies))
	}
}

func TestAddMovieRequiresID(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	if _, err := s.AddMovie(p.ID, 1, domain.MovieRef{Title: "No ID"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRemoveMoviePreservesOrder(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	for _, id := range []int64{10, 20, 30, 40} {
		if _, err := s.AddMovie(p.ID, 1, domain.MovieRef{ID: id}); err != nil {
			t.Fatalf("add %d returned error: %v", id, err)
		}
	}

	removed, err := s.RemoveMovie(p.ID, 1, 20)
	if err != nil || !removed {
		t.Fatalf("remove = (%v, %v), want (true, nil)", removed, err)
	}

	got, _ := s.GetByID(p.ID)
	want := []int64{10, 30, 40}
	if len(got.Movies) != len(want) {
		t.Fatalf("playlist has %d movies, want %d", len(got.Movies), len(want))
	}
	for i, id := range want {
		if got.Movies[i].ID != id {
			t.Errorf("movies[%d].ID = %d, want %d", i, got.Movies[i].ID, id)
		}
	}
}

func TestRemoveMovieIdempotent(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")
	_, _ = s.AddMovie(p.ID, 1, domain.MovieRef{ID: 42})

	removed, err := s.RemoveMovie(p.ID, 1, 42)
	if err != nil || !removed {
		t.Fatalf("first remove = (%v, %v), want (true, nil)", removed, err)
	}
	removed, err = s.RemoveMovie(p.ID, 1, 42)
	if err != nil || removed {
		t.Fatalf("second remove = (%v, %v), want (false, nil)", removed, err)
	}
}

func TestOwnershipImmutableAcrossMutations(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(7, "Action")

	_, _ = s.Rename(p.ID, 7, "Renamed")
	_, _ = s.AddMovie(p.ID, 7, domain.MovieRef{ID: 1})
	_, _ = s.AddMovie(p.ID, 7, domain.MovieRef{ID: 2})
	_, _ = s.RemoveMovie(p.ID, 7, 1)

	got, _ := s.GetByID(p.ID)
	if got.OwnerID != 7 {
		t.Errorf("OwnerID = %d after mutations, want 7", got.OwnerID)
	}
}

func TestUpdatedAtNeverDecreases(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	p, _ := s.Create(1, "Action")

	prev := p.UpdatedAt
	steps := []func() (*domain.Playlist, error){
		func() (*domain.Playlist, error) { return s.Rename(p.ID, 1, "One") },
		func() (*domain.Playlist, error) { return s.AddMovie(p.ID, 1, domain.MovieRef{ID: 5}) },
		func() (*domain.Playlist, error) { return s.AddMovie(p.ID, 1, domain.MovieRef{ID: 6}) },
	}
	for i, step := range steps {
		got, err := step()
		if err != nil {
			t.Fatalf("step %d returned error: %v", i, err)
		}
		if got.UpdatedAt.Before(prev) {
			t.Errorf("step %d: UpdatedAt went backwards: %v -> %v", i, prev, got.UpdatedAt)
		}
		prev = got.UpdatedAt
	}
}

// TestPlaylistScenario walks through the add/duplicate/forbidden/remove
// sequence end to end against a single playlist.
func TestPlaylistScenario(t *testing.T) {
	s := NewPlaylistStore(tickingClock())
	const userA, userB = 1, 2

	p, err := s.Create(userA, "Action")
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if _, err := s.AddMovie(p.ID, userA, domain.MovieRef{ID: 42, Title: "Mad Max"}); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if _, err := s.AddMovie(p.ID, userA, domain.MovieRef{ID: 42, Title: "Mad Max"}); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	got, _ := s.GetByID(p.ID)
	if len(got.Movies) != 1 {
		t.Fatalf("playlist has %d movies after duplicate add, want 1", len(got.Movies))
	}

	if _, err := s.RemoveMovie(p.ID, userB, 42); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	removed, err := s.RemoveMovie(p.ID, userA, 42)
	if err != nil || !removed {
		t.Fatalf("owner remove = (%v, %v), want (true, nil)", removed, err)
	}
	got, _ = s.GetByID(p.ID)
	if len(got.Movies) != 0 {
		t.Fatalf("playlist has %d movies after remove, want 0", len(got.Movies))
	}
	removed, err = s.RemoveMovie(p.ID, userA, 42)
	if err != nil || removed {
		t.Fatalf("repeat remove = (%v, %v), want (false, nil)", removed, err)
	}
}

func TestConcurrentPlaylistAccess(t *testing.T) {
	s := NewPlaylistStore(nil)
	p, _ := s.Create(1, "Concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		movieID := int64(i + 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddMovie(p.ID, 1, domain.MovieRef{ID: movieID})
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.GetByID(p.ID)
			_ = s.ListByOwner(1)
		}()
	}
	wg.Wait()

	got, _ := s.GetByID(p.ID)
	if len(got.Movies) != 50 {
		t.Fatalf("playlist has %d movies, want 50", len(got.Movies))
	}
	seen := make(map[int64]bool, len(got.Movies))
	for _, entry := range got.Movies {
		if seen[entry.ID] {
			t.Fatalf("duplicate movie id %d after concurrent adds", entry.ID)
		}
		seen[entry.ID] = true
	}
}
