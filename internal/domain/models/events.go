package models

import (
	"time"

	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

// RabbitMQ message: fare report captured -> <fare_topic> exchange
type FareReportCapturedMessage struct {
	ReportID        uuid.UUID                  `json:"report_id"`
	OriginName      string                     `json:"place_name,omitempty"`
	DestinationName string                     `json:"destination_name,omitempty"`
	CapturedAt      time.Time                  `json:"captured_at"`
	Providers       map[string]ProviderSummary `json:"providers"`
	CorrelationID   string                     `json:"correlation_id,omitempty"`
}

type ProviderSummary struct {
	Options int    `json:"options"`
	Error   string `json:"error,omitempty"`
}

// NewReportCapturedMessage summarizes report for subscribers.
func NewReportCapturedMessage(report FareReport, correlationID string) FareReportCapturedMessage {
	summary := make(map[string]ProviderSummary, len(report.Results))
	for name, res := range report.Results {
		summary[name] = ProviderSummary{Options: len(res.Options), Error: res.Error}
	}
	return FareReportCapturedMessage{
		ReportID:        report.ID,
		OriginName:      report.Request.OriginName(),
		DestinationName: report.Request.DestinationName(),
		CapturedAt:      report.CapturedAt,
		Providers:       summary,
		CorrelationID:   correlationID,
	}
}
