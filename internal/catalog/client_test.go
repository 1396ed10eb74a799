package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviefinder/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)
}

func TestSearchUsesSearchEndpointForTextQueries(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":42,"title":"Mad Max","vote_average":8.1}]}`))
	})

	results, err := client.Search(context.Background(), SearchParams{Query: "mad max"})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if gotPath != "/search/movie" {
		t.Errorf("path = %q, want /search/movie", gotPath)
	}
	if gotQuery != "mad max" {
		t.Errorf("query param = %q, want %q", gotQuery, "mad max")
	}
	if len(results) != 1 || results[0].ID != 42 || results[0].Title != "Mad Max" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestSearchFallsBackToDiscover(t *testing.T) {
	var gotPath, gotGenres, gotYear string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotGenres = r.URL.Query().Get("with_genres")
		gotYear = r.URL.Query().Get("primary_release_year")
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := client.Search(context.Background(), SearchParams{Year: "1999", GenreID: 28})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if gotPath != "/discover/movie" {
		t.Errorf("path = %q, want /discover/movie", gotPath)
	}
	if gotGenres != "28" || gotYear != "1999" {
		t.Errorf("filters = (genres=%q, year=%q), want (28, 1999)", gotGenres, gotYear)
	}
}

func TestMovieByIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"not found"}`, http.StatusNotFound)
	})

	_, err := client.MovieByID(context.Background(), 999999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMovieByIDDecodesDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/42" {
			t.Errorf("path = %q, want /movie/42", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":42,"title":"Mad Max","runtime":88,"budget":350000,"genres":[{"id":28,"name":"Action"}]}`))
	})

	movie, err := client.MovieByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("fetch returned error: %v", err)
	}
	if movie.Runtime != 88 || movie.Budget != 350000 {
		t.Errorf("details not decoded: %+v", movie)
	}
	if len(movie.Genres) != 1 || movie.Genres[0].Name != "Action" {
		t.Errorf("genres not decoded: %+v", movie.Genres)
	}
}

func TestGenres(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Errorf("path = %q, want /genre/movie/list", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":18,"name":"Drama"}]}`))
	})

	genres, err := client.Genres(context.Background())
	if err != nil {
		t.Fatalf("genres returned error: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("got %d genres, want 2", len(genres))
	}
}

func TestUpstreamErrorSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	if _, err := client.Trending(context.Background()); err == nil {
		t.Fatal("expected error for upstream failure")
	}
}
