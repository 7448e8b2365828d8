package fare

//go:generate mockgen -source=interface.go -destination=mock_deps_test.go -package=fare ReportRepository,ReportPublisher,LocationSearcher

import (
	"context"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

// Provider fetches fare options for a trip. It reports failures inside the
// result and never panics the caller.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, req models.TripRequest) models.ProviderResult
}

// RequestChecker is implemented by providers that need specific request
// fields. Handle runs it for every targeted provider before fetching.
type RequestChecker interface {
	CheckRequest(req models.TripRequest) error
}

// ReportArchive keeps one file per report.
type ReportArchive interface {
	Save(ctx context.Context, report models.FareReport) error
}

type ReportRepository interface {
	Create(ctx context.Context, report models.FareReport) error
	Get(ctx context.Context, id uuid.UUID) (models.FareReport, error)
	List(ctx context.Context, filters models.Filters) ([]models.FareReportSummary, models.Metadata, error)
}

type ReportPublisher interface {
	PublishReportCaptured(ctx context.Context, msg models.FareReportCapturedMessage) error
}

type LocationSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.Location, error)
}
