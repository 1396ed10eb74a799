package handlers

import (
	"net/http"

	"moviefinder/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Redis string `json:"redis,omitempty"`
}

// Readyz reports readiness. Redis is optional, so a failed ping is
// reported but never flips readiness.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{Ready: true}
		if d.RedisClient != nil {
			resp.Redis = "ok"
			if err := d.RedisClient.Ping(r.Context()).Err(); err != nil {
				resp.Redis = "unreachable"
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
