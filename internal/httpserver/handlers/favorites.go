package handlers

import (
	"net/http"

	"moviefinder/internal/domain"
	"moviefinder/internal/httpserver/deps"
)

// ListFavorites returns the caller's favorites in insertion order.
func ListFavorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, d.Favorites.List(user.ID))
	}
}

// AddFavorite adds a movie to the caller's favorites.
func AddFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}

		var req addMovieRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Movie == nil {
			badRequest(w, "missing movie payload")
			return
		}

		favorite, err := d.Favorites.Add(user.ID, *req.Movie)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, favorite)
	}
}

// RemoveFavorite removes a movie from the caller's favorites. The store
// treats a missing favorite as a no-op; the route surfaces it as 404.
func RemoveFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}
		movieID, ok := pathID(r, "movieId")
		if !ok {
			badRequest(w, "invalid movie id")
			return
		}

		if !d.Favorites.Remove(user.ID, movieID) {
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{Deleted: true})
	}
}
