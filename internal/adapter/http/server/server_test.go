package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-fare-aggregator/config"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/http/middleware"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/provider"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/service/fare"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	log := logger.Discard()
	svc := fare.NewService(
		[]fare.Provider{provider.NewFixture(types.ProviderUber), provider.NewFixture(types.ProviderRapido)},
		fare.NewAggregator(2, log),
		log,
	)

	cfg := config.Config{Mode: types.FareService}
	cfg.Server.Port = "0"

	api, err := New(cfg, svc, log)
	require.NoError(t, err)
	return api
}

func TestNew_RejectsUnknownMode(t *testing.T) {
	log := logger.Discard()
	svc := fare.NewService(nil, fare.NewAggregator(1, log), log)

	_, err := New(config.Config{Mode: "ride-service"}, svc, log)
	require.Error(t, err)

	_, err = New(config.Config{Mode: types.FareService}, nil, log)
	require.Error(t, err)
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	var body struct {
		Status     string `json:"status"`
		SystemInfo struct {
			Providers []string `json:"providers"`
		} `json:"system_info"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "available", body.Status)
	require.Equal(t, []string{types.ProviderUber, types.ProviderRapido}, body.SystemInfo.Providers)
}

func TestAPI_GetFareData(t *testing.T) {
	api := newTestAPI(t)

	body := `{"place_name":"Koramangala","destination_name":"Indiranagar","pickup_coords":{"lat":12.93,"lng":77.62},"drop_coords":{"lat":12.97,"lng":77.64}}`
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/get_fare_data", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"price_range"`)
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_fare_data", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAPI_Metrics(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "fare_reports_total")
}
