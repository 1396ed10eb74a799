package routes

import (
	"github.com/go-chi/chi/v5"

	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/httpserver/handlers"
	"moviefinder/internal/httpserver/mw"
)

func init() { Register(registerPlaylists) }

func registerPlaylists(r chi.Router, d deps.Deps) {
	authed := mw.RequireAuth(d.Sessions, d.Users, d.Logger)

	r.Route("/api/playlists", func(r chi.Router) {
		r.Use(authed)
		r.Get("/", handlers.ListPlaylists(d))
		r.Post("/", handlers.CreatePlaylist(d))
		r.Get("/{id}", handlers.GetPlaylist(d))
		r.Put("/{id}", handlers.RenamePlaylist(d))
		r.Delete("/{id}", handlers.DeletePlaylist(d))
		r.Post("/{id}/movies", handlers.AddPlaylistMovie(d))
		r.Delete("/{id}/movies/{movieId}", handlers.RemovePlaylistMovie(d))
	})
}
