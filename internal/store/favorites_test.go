package store

import (
	"errors"
	"sync"
	"testing"

	"moviefinder/internal/domain"
)

func TestFavoritesListEmpty(t *testing.T) {
	s := NewFavoriteStore(tickingClock())

	favorites := s.List(1)
	if favorites == nil {
		t.Fatal("List should return an empty slice, not nil")
	}
	if len(favorites) != 0 {
		t.Errorf("List returned %d favorites, want 0", len(favorites))
	}
}

func TestFavoritesAddAndList(t *testing.T) {
	s := NewFavoriteStore(tickingClock())

	fav, err := s.Add(1, domain.MovieRef{ID: 7, Title: "Heat"})
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if fav.ID != 7 {
		t.Errorf("favorite id = %d, want 7", fav.ID)
	}
	if fav.AddedAt.IsZero() {
		t.Error("favorite missing AddedAt stamp")
	}

	favorites := s.List(1)
	if len(favorites) != 1 {
		t.Fatalf("List returned %d favorites, want 1", len(favorites))
	}
}

func TestFavoritesInsertionOrder(t *testing.T) {
	s := NewFavoriteStore(tickingClock())

	for _, id := range []int64{30, 10, 20} {
		if _, err := s.Add(1, domain.MovieRef{ID: id}); err != nil {
			t.Fatalf("add %d returned error: %v", id, err)
		}
	}

	favorites := s.List(1)
	want := []int64{30, 10, 20}
	for i, id := range want {
		if favorites[i].ID != id {
			t.Errorf("favorites[%d].ID = %d, want %d", i, favorites[i].ID, id)
		}
	}
}

func TestFavoritesPerUserPartition(t *testing.T) {
	s := NewFavoriteStore(tickingClock())

	_, _ = s.Add(1, domain.MovieRef{ID: 7})
	_, _ = s.Add(2, domain.MovieRef{ID: 7})

	if len(s.List(1)) != 1 || len(s.List(2)) != 1 {
		t.Error("users should hold independent copies of the same movie")
	}
	if !s.Remove(1, 7) {
		t.Fatal("remove for user 1 failed")
	}
	if !s.IsFavorite(2, 7) {
		t.Error("removing user 1's favorite affected user 2")
	}
}

func TestFavoritesDuplicate(t *testing.T) {
	s := NewFavoriteStore(tickingClock())

	if _, err := s.Add(1, domain.MovieRef{ID: 7}); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if _, err := s.Add(1, domain.MovieRef{ID: 7, Title: "stale copy"}); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if len(s.List(1)) != 1 {
		t.Errorf("duplicate add mutated favorites: %d entries", len(s.List(1)))
	}
}

func TestFavoritesAddRequiresMovieID(t *testing.T) {
	s := NewFavoriteStore(tickingClock())

	if _, err := s.Add(1, domain.MovieRef{Title: "No ID"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestFavoriteScenario covers the favorite/unfavorite round trip with
// duplicate and repeat-removal edges.
func TestFavoriteScenario(t *testing.T) {
	s := NewFavoriteStore(tickingClock())
	const userA int64 = 1

	if _, err := s.Add(userA, domain.MovieRef{ID: 7}); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if !s.IsFavorite(userA, 7) {
		t.Fatal("IsFavorite = false after add")
	}
	if _, err := s.Add(userA, domain.MovieRef{ID: 7}); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if !s.Remove(userA, 7) {
		t.Fatal("first remove returned false")
	}
	if s.Remove(userA, 7) {
		t.Fatal("second remove returned true")
	}
	if s.IsFavorite(userA, 7) {
		t.Error("IsFavorite = true after removal")
	}
}

func TestConcurrentFavoriteAccess(t *testing.T) {
	s := NewFavoriteStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		movieID := int64(i + 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Add(1, domain.MovieRef{ID: movieID})
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.List(1)
			_ = s.IsFavorite(1, movieID)
		}()
	}
	wg.Wait()

	if len(s.List(1)) != 100 {
		t.Fatalf("favorites count = %d, want 100", len(s.List(1)))
	}
}
