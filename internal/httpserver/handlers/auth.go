package handlers

import (
	"net/http"
	"strings"
	"time"

	"moviefinder/internal/auth"
	"moviefinder/internal/domain"
	"moviefinder/internal/httpserver/deps"
	"moviefinder/internal/httpserver/mw"
	"moviefinder/internal/logger"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expiresAt"`
	User      domain.PublicProfile `json:"user"`
}

// Register creates an account and opens a session for it.
func Register(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := domain.ValidateRegistration(req.Name, req.Email, req.Password); err != nil {
			writeError(w, err)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			d.Logger.Error("password hash failed",
				logger.Error(err))
			writeError(w, err)
			return
		}

		user, err := d.Users.Create(req.Name, req.Email, hash)
		if err != nil {
			writeError(w, err)
			return
		}

		session, err := d.Sessions.Create(r.Context(), user.ID)
		if err != nil {
			d.Logger.Error("session create failed",
				logger.Error(err))
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			User:      user.Public(),
		})
	}
}

// Login verifies credentials and opens a session.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, ok := d.Users.FindByEmail(req.Email)
		// Same response for unknown email and wrong password.
		if !ok || !auth.CheckPassword(user.PasswordHash, req.Password) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{
				Error:   "unauthorized",
				Message: "invalid email or password",
			})
			return
		}

		session, err := d.Sessions.Create(r.Context(), user.ID)
		if err != nil {
			d.Logger.Error("session create failed",
				logger.Error(err))
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			User:      user.Public(),
		})
	}
}

// Me returns the authenticated user's profile.
func Me(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := mw.UserFrom(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{
				Error:   "unauthorized",
				Message: "missing session",
			})
			return
		}
		writeJSON(w, http.StatusOK, user.Public())
	}
}

// Logout revokes the current session. Revoking an already-dead token
// still returns 204.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerFromHeader(r.Header.Get("Authorization"))
		if token != "" {
			if err := d.Sessions.Delete(r.Context(), token); err != nil {
				d.Logger.Error("session delete failed",
					logger.Error(err))
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func bearerFromHeader(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
