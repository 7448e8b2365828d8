package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
)

func TestRequestID_Generated(t *testing.T) {
	m := NewMiddleware("test", logger.Discard())

	var seen string
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	m := NewMiddleware("test", logger.Discard())

	var seen string
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.RequestIDFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	m := NewMiddleware("test", logger.Discard())

	h := m.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "close", rec.Header().Get("Connection"))
	require.Contains(t, rec.Body.String(), `"error"`)
}

func TestMetrics_LabelsByPattern(t *testing.T) {
	m := NewMiddleware("metrics-test", logger.Discard())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /fares/{report_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := m.Metrics(mux)

	for range 2 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fares/one", nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, 2.0, testutil.ToFloat64(
		metrics.HttpRequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "GET /fares/{report_id}", "404"),
	))
	require.Equal(t, 1.0, testutil.ToFloat64(
		metrics.HttpRequestsTotal.WithLabelValues("metrics-test", http.MethodGet, unmatchedRoute, "404"),
	))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.HttpRequestsInFlight.WithLabelValues("metrics-test")))
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	require.Equal(t, http.StatusOK, rw.Status())

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	require.Equal(t, http.StatusTeapot, rw.Status())
}

func TestLogging_RouteAndServerErrors(t *testing.T) {
	var buf bytes.Buffer
	m := NewMiddleware("test", logger.New(&buf, "test", logger.LevelInfo))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /fares/{report_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	rec := httptest.NewRecorder()
	m.Logging(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fares/abc", nil))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "WARN", record["level"])
	require.Equal(t, "completed with server error", record["message"])
	require.Equal(t, "GET /fares/{report_id}", record["route"])
	require.EqualValues(t, http.StatusServiceUnavailable, record["status"])
}
