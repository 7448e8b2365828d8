package middleware

import (
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
)

type Middleware struct {
	serviceName string
	log         logger.Logger
}

func NewMiddleware(serviceName string, log logger.Logger) *Middleware {
	return &Middleware{
		serviceName: serviceName,
		log:         log,
	}
}
