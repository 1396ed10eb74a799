package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"moviefinder/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps domain errors to their HTTP status. Unknown errors
// surface as 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error:   "forbidden",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicate):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:   "duplicate",
			Message: err.Error(),
		})
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_failed",
			Message: vErr.Error(),
			Field:   vErr.Field,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "internal",
			Message: "internal server error",
		})
	}
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dest); err != nil {
		badRequest(w, "invalid JSON body")
		return false
	}
	return true
}
