package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID stamps each request with a uuid, reusing the caller's
// X-Request-ID when present, and echoes it on the response so error
// payloads can be correlated with logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
