package models

import (
	"maps"
	"slices"
	"time"

	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

// FareOption is one ride category offered by a provider. PriceText is kept
// exactly as the provider formats it: a single amount, a range, or a label.
type FareOption struct {
	FleetLabel string `json:"fleet"`
	PriceText  string `json:"price"`
}

// ProviderResult is the outcome of asking one provider. A provider either
// returns options or fails as a whole; Error is empty on success.
type ProviderResult struct {
	Provider string       `json:"provider"`
	Options  []FareOption `json:"options"`
	Error    string       `json:"error,omitempty"`

	// Err keeps the typed error for errors.Is checks. Not persisted.
	Err error `json:"-"`
}

// SucceededResult builds a successful result. A nil options slice becomes empty.
func SucceededResult(provider string, options []FareOption) ProviderResult {
	if options == nil {
		options = []FareOption{}
	}
	return ProviderResult{Provider: provider, Options: options}
}

// FailedResult builds a failed result with no options.
func FailedResult(provider string, err error) ProviderResult {
	return ProviderResult{
		Provider: provider,
		Options:  []FareOption{},
		Error:    err.Error(),
		Err:      err,
	}
}

func (r ProviderResult) Failed() bool {
	return r.Error != ""
}

// FareReport is the merged answer for one trip request. It holds exactly one
// result per provider that was asked, whether or not that provider succeeded.
type FareReport struct {
	ID         uuid.UUID                 `json:"report_id"`
	Request    TripRequest               `json:"request"`
	Results    map[string]ProviderResult `json:"results"`
	CapturedAt time.Time                 `json:"captured_at"`
}

// NewFareReport copies results so the report does not share the caller's map.
func NewFareReport(id uuid.UUID, req TripRequest, results map[string]ProviderResult, capturedAt time.Time) FareReport {
	return FareReport{
		ID:         id,
		Request:    req,
		Results:    maps.Clone(results),
		CapturedAt: capturedAt.UTC(),
	}
}

// Providers returns the provider names of the report in sorted order.
func (r FareReport) Providers() []string {
	return slices.Sorted(maps.Keys(r.Results))
}

// Result returns the result of provider and whether it was asked.
func (r FareReport) Result(provider string) (ProviderResult, bool) {
	res, ok := r.Results[provider]
	return res, ok
}

// FareReportSummary is a lightweight listing row.
type FareReportSummary struct {
	ID              uuid.UUID      `json:"report_id"`
	OriginName      string         `json:"place_name"`
	DestinationName string         `json:"destination_name"`
	CapturedAt      time.Time      `json:"captured_at"`
	OptionCounts    map[string]int `json:"option_counts"`
}
