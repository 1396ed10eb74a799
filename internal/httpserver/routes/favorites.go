package routes

import (
	"github.com/go-chi/chi/v5"

	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/httpserver/handlers"
	"moviefinder/internal/httpserver/mw"
)

func init() { Register(registerFavorites) }

func registerFavorites(r chi.Router, d deps.Deps) {
	authed := mw.RequireAuth(d.Sessions, d.Users, d.Logger)

	r.Route("/api/favorites", func(r chi.Router) {
		r.Use(authed)
		r.Get("/", handlers.ListFavorites(d))
		r.Post("/", handlers.AddFavorite(d))
		r.Delete("/{movieId}", handlers.RemoveFavorite(d))
	})
}
