package server

import (
	"github.com/Temutjin2k/ride-fare-aggregator/docs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)

	a.setupFareRoutes()
	a.setupSwaggerRoutes()
	a.setupMetricsRoute()
}

func (a *API) setupFareRoutes() {
	a.mux.HandleFunc("POST /get_fare_data", a.routes.fare.GetFareData)         // Compare fares across providers
	a.mux.HandleFunc("GET /ride-options", a.routes.fare.RideOptions)           // Provider-keyed ride options
	a.mux.HandleFunc("GET /fares", a.routes.fare.ListReports)                  // List stored reports
	a.mux.HandleFunc("GET /fares/{report_id}", a.routes.fare.GetReport)        // Get a stored report
	a.mux.HandleFunc("GET /locations/suggest", a.routes.fare.SuggestLocations) // Place suggestions
}

// setupSwaggerRoutes serves the Swagger UI for the fare API
func (a *API) setupSwaggerRoutes() {
	swaggerURL := httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName())
	a.mux.HandleFunc("GET /swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func (a *API) setupMetricsRoute() {
	a.mux.Handle("GET /metrics", promhttp.Handler())
}
