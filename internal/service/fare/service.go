package fare

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

const (
	// SuggestMinQuery is the shortest query sent to the geocoder.
	SuggestMinQuery = 3
	SuggestLimit    = 5
)

// Persistence sink names, used as metric labels.
const (
	SinkArchive  = "archive"
	SinkDatabase = "database"
	SinkBroker   = "broker"
)

// Service is the request endpoint: it validates a trip request, aggregates
// the configured providers and persists the report best-effort.
type Service struct {
	providers  []Provider
	aggregator *Aggregator

	archive   ReportArchive
	repo      ReportRepository
	publisher ReportPublisher
	geocoder  LocationSearcher

	log logger.Logger
}

// Option wires an optional collaborator into the service.
type Option func(*Service)

func WithArchive(a ReportArchive) Option { return func(s *Service) { s.archive = a } }
func WithRepository(r ReportRepository) Option { return func(s *Service) { s.repo = r } }
func WithPublisher(p ReportPublisher) Option { return func(s *Service) { s.publisher = p } }
func WithLocationSearch(g LocationSearcher) Option { return func(s *Service) { s.geocoder = g } }

func NewService(providers []Provider, aggregator *Aggregator, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		providers:  providers,
		aggregator: aggregator,
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Providers returns the names of the configured providers in order.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name())
	}
	return names
}

// Select returns the configured providers named in only, in configured
// order. An empty only selects every provider.
func (s *Service) Select(only []string) ([]Provider, error) {
	if len(only) == 0 {
		return s.providers, nil
	}

	wanted := make([]string, 0, len(only))
	for _, name := range only {
		name = strings.ToLower(strings.TrimSpace(name))
		if !slices.Contains(s.Providers(), name) {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownProvider, name)
		}
		wanted = append(wanted, name)
	}

	selected := make([]Provider, 0, len(wanted))
	for _, p := range s.providers {
		if slices.Contains(wanted, p.Name()) {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// Handle validates req against every targeted provider, aggregates and
// persists. Nothing is fetched when validation fails.
func (s *Service) Handle(ctx context.Context, req models.TripRequest, only ...string) (models.FareReport, error) {
	ctx = wrap.WithAction(ctx, types.ActionFetchFares)

	providers, err := s.Select(only)
	if err != nil {
		return models.FareReport{}, wrap.Error(ctx, err)
	}

	var errs []error
	for _, p := range providers {
		if c, ok := p.(RequestChecker); ok {
			if err := c.CheckRequest(req); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			}
		}
	}
	if len(errs) > 0 {
		return models.FareReport{}, wrap.Error(ctx, errors.Join(errs...))
	}

	report := s.aggregator.Aggregate(ctx, req, providers)
	ctx = wrap.WithReportID(ctx, report.ID.String())

	s.persist(ctx, report)

	s.log.Info(ctx, "fare report built", "providers", len(report.Results))
	return report, nil
}

// persist hands the report to every configured sink. Failures are logged and
// counted, never returned.
func (s *Service) persist(ctx context.Context, report models.FareReport) {
	ctx = wrap.WithAction(ctx, types.ActionPersistReport)

	if s.archive != nil {
		if err := s.archive.Save(ctx, report); err != nil {
			s.persistFailed(ctx, SinkArchive, err)
		}
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, report); err != nil {
			s.persistFailed(ctx, SinkDatabase, err)
		}
	}

	if s.publisher != nil {
		msg := models.NewReportCapturedMessage(report, wrap.RequestIDFrom(ctx))
		if err := s.publisher.PublishReportCaptured(ctx, msg); err != nil {
			s.persistFailed(ctx, SinkBroker, err)
		}
	}
}

func (s *Service) persistFailed(ctx context.Context, sink string, err error) {
	metrics.PersistenceFailuresTotal.WithLabelValues(sink).Inc()
	s.log.Error(wrap.ErrorCtx(ctx, err), "failed to persist fare report", err, "sink", sink)
}

// Get returns a stored report.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (models.FareReport, error) {
	ctx = wrap.WithReportID(ctx, id.String())
	if s.repo == nil {
		return models.FareReport{}, types.ErrHistoryDisabled
	}

	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.FareReport{}, wrap.Error(ctx, err)
	}
	return report, nil
}

// List pages through stored reports.
func (s *Service) List(ctx context.Context, filters models.Filters) ([]models.FareReportSummary, models.Metadata, error) {
	if s.repo == nil {
		return nil, models.Metadata{}, types.ErrHistoryDisabled
	}

	reports, meta, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, err)
	}
	return reports, meta, nil
}

// SuggestLocations returns up to SuggestLimit places matching query.
func (s *Service) SuggestLocations(ctx context.Context, query string) ([]models.Location, error) {
	if s.geocoder == nil {
		return nil, types.ErrGeocoderDisabled
	}

	query = strings.TrimSpace(query)
	if len([]rune(query)) < SuggestMinQuery {
		return nil, fmt.Errorf("%w: query must be at least %d characters", types.ErrInvalidRequest, SuggestMinQuery)
	}

	locations, err := s.geocoder.Search(ctx, query, SuggestLimit)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	if len(locations) > SuggestLimit {
		locations = locations[:SuggestLimit]
	}
	return locations, nil
}
