package middleware

import (
	"net/http"
	"time"
)

// Logging logs the start and end of every request. Server errors are logged
// as warnings so they stand out from regular traffic.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w}

		m.log.Debug(
			r.Context(),
			"started",
			"method", r.Method,
			"URL", r.URL.Path,
			"request-host", r.Host,
		)

		next.ServeHTTP(rw, r)

		args := []any{
			"method", r.Method,
			"URL", r.URL.Path,
			"route", r.Pattern,
			"status", rw.Status(),
			"duration", time.Since(start),
		}
		if rw.Status() >= http.StatusInternalServerError {
			m.log.Warn(r.Context(), "completed with server error", args...)
			return
		}
		m.log.Info(r.Context(), "completed", args...)
	})
}
