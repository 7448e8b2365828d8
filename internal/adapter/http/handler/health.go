package handler

import (
	"net/http"

	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
)

type Health struct {
	serviceName string
	providers   []string
	log         logger.Logger
}

func NewHealth(serviceName string, providers []string, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		providers:   providers,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service and the configured providers
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	response := envelope{
		"status": "available",
		"system_info": map[string]any{
			"service-name": a.serviceName,
			"providers":    a.providers,
		},
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}
