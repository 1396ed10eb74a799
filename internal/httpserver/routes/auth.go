package routes

import (
	"github.com/go-chi/chi/v5"

	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/httpserver/handlers"
	"moviefinder/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	rate := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.AuthRateBurst,
		RefillPerIPPerMin: d.AuthRatePerMinute,
		TrustProxy:        d.TrustProxy,
	})
	authed := mw.RequireAuth(d.Sessions, d.Users, d.Logger)

	r.Route("/api/auth", func(r chi.Router) {
		r.With(rate).Post("/register", handlers.Register(d))
		r.With(rate).Post("/login", handlers.Login(d))
		r.With(authed).Get("/me", handlers.Me(d))
		r.With(authed).Post("/logout", handlers.Logout(d))
	})
}
