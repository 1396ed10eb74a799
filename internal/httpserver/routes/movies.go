package routes

import (
	"github.com/go-chi/chi/v5"

	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/httpserver/handlers"
)

func init() { Register(registerMovies) }

func registerMovies(r chi.Router, d deps.Deps) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/search", handlers.SearchMovies(d))
		r.Get("/trending", handlers.TrendingMovies(d))
		r.Get("/genres", handlers.MovieGenres(d))
		r.Get("/{id}", handlers.MovieDetails(d))
	})
}
