package types

import "errors"

var (
	// ErrInvalidRequest marks a trip request that lacks the fields a provider or the endpoint needs.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrLoadTimeout means the rendered page never produced the expected marker element.
	ErrLoadTimeout = errors.New("page load timeout")
	// ErrExtractionMismatch means fleet and price sequences had different lengths.
	ErrExtractionMismatch = errors.New("fleet and price counts differ")
	// ErrRenderFailed wraps any other render collaborator failure.
	ErrRenderFailed = errors.New("render failed")

	ErrUnknownProvider = errors.New("unknown provider")
	ErrReportNotFound  = errors.New("fare report not found")
	ErrReportExists    = errors.New("fare report already exists")
	ErrNotFound        = errors.New("requested item not found")

	ErrHistoryDisabled  = errors.New("report history is not configured")
	ErrGeocoderDisabled = errors.New("location search is not configured")
	ErrLocationNotFound = errors.New("location not found")
)
