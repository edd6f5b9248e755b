package middleware

import (
	"net/http"
	"time"

	"github.com/dtroode/clinic-server/internal/logger"
)

// Logging writes one access log line per request.
func Logging(logger *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			logger.Info("HTTP: request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"dur", time.Since(start),
				"bytes", sw.count,
				"request_id", RequestIDFromContext(r.Context()))
		})
	}
}
