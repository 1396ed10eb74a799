package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"moviefinder/internal/domain"
	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/httpserver/mw"
)

type playlistNameRequest struct {
	Name string `json:"name"`
}

type addMovieRequest struct {
	Movie *domain.MovieRef `json:"movie"`
}

type deletedResponse struct {
	Deleted bool `json:"deleted"`
}

// pathID parses a chi URL parameter as an int64 id.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requestUser unwraps the user RequireAuth put in the context; the route
// table guarantees it is there.
func requestUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := mw.UserFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error:   "unauthorized",
			Message: "missing session",
		})
	}
	return user, ok
}

// ListPlaylists returns the caller's playlists.
func ListPlaylists(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, d.Playlists.ListByOwner(user.ID))
	}
}

// CreatePlaylist creates an empty playlist owned by the caller.
func CreatePlaylist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}

		var req playlistNameRequest
		if !decodeBody(w, r, &req) {
			return
		}

		playlist, err := d.Playlists.Create(user.ID, req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, playlist)
	}
}

// GetPlaylist returns one playlist. Only the owner may read it through
// this route; the public discovery routes expose playlists by user id.
func GetPlaylist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid playlist id")
			return
		}

		playlist, found := d.Playlists.GetByID(id)
		if !found {
			writeError(w, domain.ErrNotFound)
			return
		}
		if playlist.OwnerID != user.ID {
			writeError(w, domain.ErrForbidden)
			return
		}
		writeJSON(w, http.StatusOK, playlist)
	}
}

// RenamePlaylist changes the playlist name.
func RenamePlaylist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid playlist id")
			return
		}

		var req playlistNameRequest
		if !decodeBody(w, r, &req) {
			return
		}

		playlist, err := d.Playlists.Rename(id, user.ID, req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, playlist)
	}
}

// DeletePlaylist removes a playlist. An absent playlist is a 404, not
// an error state.
func DeletePlaylist(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid playlist id")
			return
		}

		deleted, err := d.Playlists.Delete(id, user.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		if !deleted {
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{Deleted: true})
	}
}

// AddPlaylistMovie appends a movie to the playlist.
func AddPlaylistMovie(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid playlist id")
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

		playlist, err := d.Playlists.AddMovie(id, user.ID, *req.Movie)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, playlist)
	}
}

// RemovePlaylistMovie removes a movie from the playlist. A movie that was
// never there is a 404.
func RemovePlaylistMovie(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requestUser(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			badRequest(w, "invalid playlist id")
			return
		}
		movieID, ok := pathID(r, "movieId")
		if !ok {
			badRequest(w, "invalid movie id")
			return
		}

		removed, err := d.Playlists.RemoveMovie(id, user.ID, movieID)
		if err != nil {
			writeError(w, err)
			return
		}
		if !removed {
			writeError(w, domain.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{Deleted: true})
	}
}
