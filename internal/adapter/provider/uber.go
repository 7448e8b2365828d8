package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
)

const (
	uberFleetClass = "_css-jsRibq"
	uberPriceClass = "_css-jeMYle"

	DefaultUberMarkerTimeout = 20 * time.Second
)

type UberOptions struct {
	MarkerTimeout time.Duration
	StrictPairing bool
}

// Uber reads product selection cards from m.uber.com. It needs pickup and
// drop coordinates.
type Uber struct {
	renderer render.Renderer
	opts     UberOptions
	pairing  pairing
	log      logger.Logger
}

func NewUber(renderer render.Renderer, opts UberOptions, log logger.Logger) *Uber {
	if opts.MarkerTimeout <= 0 {
		opts.MarkerTimeout = DefaultUberMarkerTimeout
	}
	return &Uber{
		renderer: renderer,
		opts:     opts,
		pairing:  pairing{strict: opts.StrictPairing, log: log},
		log:      log,
	}
}

func (u *Uber) Name() string { return types.ProviderUber }

// UberURL builds the product selection URL. The JSON objects are written
// pre-encoded, so the layout matches what the site expects byte for byte.
func UberURL(pickup, drop models.Coordinates) string {
	return fmt.Sprintf(
		"https://m.uber.com/go/product-selection?drop%%5B0%%5D=%%7B%%22latitude%%22%%3A%s%%2C%%22longitude%%22%%3A%s%%7D&pickup=%%7B%%22latitude%%22%%3A%s%%2C%%22longitude%%22%%3A%s%%7D",
		formatCoord(drop.Lat), formatCoord(drop.Lng),
		formatCoord(pickup.Lat), formatCoord(pickup.Lng),
	)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CheckRequest requires pickup and drop coordinates.
func (u *Uber) CheckRequest(req models.TripRequest) error {
	return needCoords(req)
}

func (u *Uber) Fetch(ctx context.Context, req models.TripRequest) models.ProviderResult {
	ctx = wrap.WithProvider(ctx, types.ProviderUber)

	if err := u.CheckRequest(req); err != nil {
		return models.FailedResult(u.Name(), wrap.Error(ctx, err))
	}
	pickup, _ := req.PickupCoords()
	drop, _ := req.DropCoords()

	session, err := u.renderer.Open(ctx)
	if err != nil {
		return models.FailedResult(u.Name(), err)
	}
	defer session.Close()

	texts, err := session.Render(ctx, render.Page{
		URL: UberURL(pickup, drop),
		Categories: map[string]string{
			CategoryFleet: uberFleetClass,
			CategoryPrice: uberPriceClass,
		},
		Marker:        uberFleetClass,
		MarkerTimeout: u.opts.MarkerTimeout,
	})
	if err != nil {
		u.log.Error(ctx, "uber page render failed", err)
		return models.FailedResult(u.Name(), err)
	}

	fleets := make([]string, 0, len(texts[CategoryFleet]))
	for _, block := range texts[CategoryFleet] {
		fleets = append(fleets, FirstLine(block))
	}
	prices := make([]string, 0, len(texts[CategoryPrice]))
	for _, block := range texts[CategoryPrice] {
		prices = append(prices, LineAt(block, 0))
	}

	options, err := u.pairing.pair(ctx, u.Name(), fleets, prices)
	if err != nil {
		return models.FailedResult(u.Name(), wrap.Error(ctx, err))
	}

	return models.SucceededResult(u.Name(), options)
}
