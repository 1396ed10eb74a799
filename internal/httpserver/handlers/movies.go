package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"moviefinder/internal/catalog"
	"moviefinder/internal/domain"
	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/logger"
)

// upstreamError reports a catalog failure without leaking upstream detail.
func upstreamError(w http.ResponseWriter, d deps.Deps, err error) {
	d.Logger.Error("catalog request failed",
		logger.Error(err))
	writeJSON(w, http.StatusBadGateway, errorResponse{
		Error:   "upstream_unavailable",
		Message: "movie catalog is unavailable",
	})
}

// SearchMovies proxies a catalog search. With a query it searches by
// title; without one it browses by year/genre filters.
func SearchMovies(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		params := catalog.SearchParams{
			Query: q.Get("query"),
			Year:  q.Get("year"),
		}
		if raw := q.Get("genre"); raw != "" {
			genreID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || genreID <= 0 {
				badRequest(w, "invalid genre id")
				return
			}
			params.GenreID = genreID
		}

		movies, err := d.Catalog.Search(r.Context(), params)
		if err != nil {
			upstreamError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, movies)
	}
}

// TrendingMovies proxies the catalog's daily trending list.
func TrendingMovies(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies, err := d.Catalog.Trending(r.Context())
		if err != nil {
			upstreamError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, movies)
	}
}

// MovieDetails proxies a single catalog record lookup.
func MovieDetails(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid movie id")
			return
		}

		movie, err := d.Catalog.MovieByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, err)
				return
			}
			upstreamError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, movie)
	}
}

// MovieGenres proxies the catalog's genre list.
func MovieGenres(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := d.Catalog.Genres(r.Context())
		if err != nil {
			upstreamError(w, d, err)
			return
		}
		writeJSON(w, http.StatusOK, genres)
	}
}
