package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/styleai-app/styleai-server/ai"
)

// RespondJSON sends a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent at this point; nothing left but to log it.
		log.Error().Err(err).Msg("error encoding JSON response")
	}
}

// RespondError sends a JSON error body with a user-safe message.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// StatusForError maps an upstream pipeline error onto an HTTP status and a
// user-safe message. Raw upstream error text is never echoed to clients.
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		return http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment."
	case errors.Is(err, ai.ErrQuotaExhausted):
		return http.StatusPaymentRequired, "AI credits exhausted. Please add credits to continue."
	case errors.Is(err, ai.ErrMisconfigured):
		return http.StatusInternalServerError, "Service configuration error. Please try again later."
	default:
		return http.StatusInternalServerError, "An unexpected error occurred. Please try again."
	}
}

// LatencyMiddleware logs the duration of each request
func LatencyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}
