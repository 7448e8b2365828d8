package types

import "slices"

type ServiceMode string

// FareService serves fare comparisons over HTTP.
const (
	FareService ServiceMode = "fare-service"
)

// Provider names as they appear in report envelopes and configuration.
const (
	ProviderUber   = "uber"
	ProviderRapido = "rapido"
)

// KnownProviders lists every provider the service can query, in envelope order.
var KnownProviders = []string{ProviderUber, ProviderRapido}

func IsKnownProvider(name string) bool {
	return slices.Contains(KnownProviders, name)
}

// Provider adapter modes.
const (
	ProvidersLive    = "live"
	ProvidersFixture = "fixture"
)

// Render engines.
const (
	RenderChrome = "chrome"
	RenderStatic = "static"
)

// PriceNotAvailable replaces a price line that is missing from a scraped block.
const PriceNotAvailable = "N/A"

// ReportEvent is the routing key suffix of messages published about fare reports.
type ReportEvent string

func (e ReportEvent) String() string {
	return string(e)
}

const (
	EventReportCaptured ReportEvent = "fare.report.captured"
)
