package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"newskoop/newsroom/internal/auth"
)

// RequestIDMiddleware attaches a correlation id to the context and echoes it
// back in the response headers.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := auth.SetRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
