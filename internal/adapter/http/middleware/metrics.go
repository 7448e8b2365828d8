package middleware

import (
	"net/http"
	"time"

	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
)

const unmatchedRoute = "unmatched"

// responseWriter captures the status code written by the handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.statusCode == 0 {
		rw.statusCode = code
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Status() int {
	if rw.statusCode == 0 {
		return http.StatusOK
	}
	return rw.statusCode
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Metrics records HTTP metrics labelled by route pattern. It must wrap the
// mux directly: ServeMux sets r.Pattern on the request it was handed.
func (m *Middleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		inFlight := metrics.HttpRequestsInFlight.WithLabelValues(m.serviceName)
		inFlight.Inc()
		defer inFlight.Dec()

		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordHTTPMetrics(m.serviceName, r.Method, route, rw.Status(), time.Since(start))
	})
}
