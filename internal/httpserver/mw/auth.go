package mw

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"moviefinder/internal/auth"
	"moviefinder/internal/domain"
	"moviefinder/internal/logger"
	"moviefinder/internal/store"
)

type ctxKey int

const userKey ctxKey = 0

// UserFrom returns the authenticated user stored by RequireAuth.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// RequireAuth resolves the Authorization bearer token to a live session and
// loads its user into the request context. Requests without a valid session
// get a 401 JSON body.
func RequireAuth(sessions auth.SessionStore, users *store.UserStore, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			session, err := sessions.Get(r.Context(), token)
			if err != nil {
				log.Error("session lookup failed",
					logger.Error(err))
				unauthorized(w, "invalid or expired session")
				return
			}
			if session == nil {
				unauthorized(w, "invalid or expired session")
				return
			}

			user, ok := users.FindByID(session.UserID)
			if !ok {
				unauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "unauthorized",
		"message": message,
	})
}
