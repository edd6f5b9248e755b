package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/clinic-server/internal/api/http/response"
)

const maxRequestIDLength = 64

type requestIDKey struct{}

// RequestID tags every request with an id taken from X-Request-Id or, when
// that is missing or unusable, a fresh uuid. The id is echoed in the response
// and stored in the request context for logging and error bodies.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(response.RequestIDHeader)
			if !usableRequestID(id) {
				id = uuid.NewString()
				r.Header.Set(response.RequestIDHeader, id)
			}
			w.Header().Set(response.RequestIDHeader, id)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

// RequestIDFromContext returns the id stored by RequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// usableRequestID accepts short ids made of visible ASCII only, so client
// supplied values cannot bloat or split log lines.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
