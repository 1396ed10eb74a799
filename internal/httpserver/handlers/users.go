package handlers

import (
	"net/http"

	"moviefinder/internal/domain"
	"moviefinder/internal/httpserver/deps"
)

// ListUsers returns every registered user's public profile. Community
// discovery is open on purpose: profiles carry no credentials.
func ListUsers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Users.List())
	}
}

// GetUser returns one public profile.
func GetUser(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid user id")
			return
		}

		user, found := d.Users.FindByID(id)
		if !found {
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, user.Public())
	}
}

// UserPlaylists exposes a user's playlists publicly. 404 only when the
// user id itself does not resolve; an empty list is a normal answer.
func UserPlaylists(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid user id")
			return
		}
		if !d.Users.Exists(id) {
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, d.Playlists.ListByOwner(id))
	}
}

// UserFavorites exposes a user's favorites publicly, same contract as
// UserPlaylists.
func UserFavorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid user id")
			return
		}
		if !d.Users.Exists(id) {
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, d.Favorites.List(id))
	}
}
