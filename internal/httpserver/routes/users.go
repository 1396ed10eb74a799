package routes

import (
	"github.com/go-chi/chi/v5"

	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/httpserver/handlers"
)

func init() { Register(registerUsers) }

// Public community-discovery routes, no auth on purpose.
func registerUsers(r chi.Router, d deps.Deps) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", handlers.ListUsers(d))
		r.Get("/{id}", handlers.GetUser(d))
		r.Get("/{id}/playlists", handlers.UserPlaylists(d))
		r.Get("/{id}/favorites", handlers.UserFavorites(d))
	})
}
