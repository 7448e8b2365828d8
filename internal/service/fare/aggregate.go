package fare

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

// Aggregator fans a trip request out to providers and merges the results.
// The semaphore is shared by all requests, so it bounds the number of render
// sessions open at once across the process.
type Aggregator struct {
	sem *semaphore.Weighted
	now func() time.Time
	log logger.Logger
}

func NewAggregator(maxParallel int64, log logger.Logger) *Aggregator {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Aggregator{
		sem: semaphore.NewWeighted(maxParallel),
		now: time.Now,
		log: log,
	}
}

// Aggregate asks every provider and returns a report with exactly one result
// per provider. A failing provider never affects its siblings.
func (a *Aggregator) Aggregate(ctx context.Context, req models.TripRequest, providers []Provider) models.FareReport {
	ctx = wrap.WithAction(ctx, types.ActionAggregate)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]models.ProviderResult, len(providers))
	)

	for _, p := range providers {
		wg.Go(func() {
			res := a.fetch(ctx, p, req)
			mu.Lock()
			results[res.Provider] = res
			mu.Unlock()
		})
	}
	wg.Wait()

	id, err := uuid.New()
	if err != nil {
		a.log.Error(ctx, "failed to generate report id", err)
	}

	metrics.FareReportsTotal.Inc()
	return models.NewFareReport(id, req, results, a.now())
}

func (a *Aggregator) fetch(ctx context.Context, p Provider, req models.TripRequest) (res models.ProviderResult) {
	name := p.Name()
	ctx = wrap.WithProvider(ctx, name)

	if err := a.sem.Acquire(ctx, 1); err != nil {
		return models.FailedResult(name, wrap.Error(ctx, fmt.Errorf("wait for render slot: %w", err)))
	}
	defer a.sem.Release(1)

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = models.FailedResult(name, wrap.Error(ctx, fmt.Errorf("%w: provider panicked: %v", types.ErrRenderFailed, r)))
			a.log.Error(ctx, "provider panicked", res.Err)
		}
		metrics.RecordProviderFetch(name, res.Err, time.Since(start))
	}()

	res = p.Fetch(wrap.WithAction(ctx, types.ActionFetchFares), req)
	res.Provider = name
	if res.Failed() && res.Err == nil {
		res.Err = errors.New(res.Error)
	}
	if res.Options == nil {
		res.Options = []models.FareOption{}
	}

	if res.Failed() {
		a.log.Warn(ctx, "provider fetch failed", "error", res.Error, "duration", time.Since(start).String())
	} else {
		a.log.Info(ctx, "provider fetch done", "options", len(res.Options), "duration", time.Since(start).String())
	}
	return res
}
