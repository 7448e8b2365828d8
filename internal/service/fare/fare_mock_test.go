package fare

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/provider"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
)

func newMockedService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	log := logger.Discard()
	providers := []Provider{provider.NewFixture(types.ProviderRapido)}
	return NewService(providers, NewAggregator(2, log), log, opts...)
}

func TestHandle_PublishesSummaryWithRequestID(t *testing.T) {
	t.Parallel()

	// Arrange: a publisher that expects exactly one captured message.
	ctrl := gomock.NewController(t)
	publisher := NewMockReportPublisher(ctrl)

	var published models.FareReportCapturedMessage
	publisher.EXPECT().
		PublishReportCaptured(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg models.FareReportCapturedMessage) error {
			published = msg
			return nil
		}).
		Times(1)

	svc := newMockedService(t, WithPublisher(publisher))
	ctx := wrap.WithRequestID(context.Background(), "req-42")

	// Act
	report, err := svc.Handle(ctx, models.NewTripRequest("Koramangala", "Indiranagar", nil, nil))

	// Assert
	require.NoError(t, err)
	require.Equal(t, report.ID, published.ReportID)
	require.Equal(t, "req-42", published.CorrelationID)
	require.Equal(t, "Koramangala", published.OriginName)
	require.Equal(t, models.ProviderSummary{Options: 4}, published.Providers[types.ProviderRapido])
}

func TestHandle_RepositoryFailureStillPublishes(t *testing.T) {
	// Arrange: the repository fails, the publisher must still be called.
	ctrl := gomock.NewController(t)
	repo := NewMockReportRepository(ctrl)
	publisher := NewMockReportPublisher(ctrl)

	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")),
		publisher.EXPECT().PublishReportCaptured(gomock.Any(), gomock.Any()).Return(nil),
	)

	svc := newMockedService(t, WithRepository(repo), WithPublisher(publisher))
	before := testutil.ToFloat64(metrics.PersistenceFailuresTotal.WithLabelValues(SinkDatabase))

	// Act
	report, err := svc.Handle(context.Background(), models.NewTripRequest("a", "b", nil, nil))

	// Assert
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.PersistenceFailuresTotal.WithLabelValues(SinkDatabase)))
}

func TestHandle_InvalidRequestPersistsNothing(t *testing.T) {
	t.Parallel()

	// Arrange: no calls are expected on any sink.
	ctrl := gomock.NewController(t)
	repo := NewMockReportRepository(ctrl)
	publisher := NewMockReportPublisher(ctrl)

	svc := newMockedService(t, WithRepository(repo), WithPublisher(publisher))

	// Act
	_, err := svc.Handle(context.Background(), models.NewTripRequest("", "b", nil, nil))

	// Assert
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

func TestList_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := NewMockReportRepository(ctrl)

	filters := models.NewReportFilters(2, 10, "")
	repo.EXPECT().
		List(gomock.Any(), filters).
		Return([]models.FareReportSummary{{OriginName: "a"}}, models.CalculateMetadata(11, 2, 10), nil)

	svc := newMockedService(t, WithRepository(repo))

	list, meta, err := svc.List(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2, meta.LastPage)
}

func TestSuggestLocations_TrimsAndCaps(t *testing.T) {
	t.Parallel()

	// Arrange: the geocoder returns more than the cap.
	ctrl := gomock.NewController(t)
	geocoder := NewMockLocationSearcher(ctrl)

	many := make([]models.Location, SuggestLimit+3)
	geocoder.EXPECT().
		Search(gomock.Any(), "Koramangala", SuggestLimit).
		Return(many, nil).
		Times(1)

	svc := newMockedService(t, WithLocationSearch(geocoder))

	// Act
	got, err := svc.SuggestLocations(context.Background(), "  Koramangala ")

	// Assert
	require.NoError(t, err)
	require.Len(t, got, SuggestLimit)
}

func TestSuggestLocations_ShortQuerySkipsGeocoder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	geocoder := NewMockLocationSearcher(ctrl)

	svc := newMockedService(t, WithLocationSearch(geocoder))

	_, err := svc.SuggestLocations(context.Background(), " ab ")
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}
