package provider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
)

const (
	rapidoFleetClass = "card-content"
	rapidoPriceClass = "card-wrap"

	// price amount sits on the second line of a card-wrap block
	rapidoPriceLine = 1

	DefaultRapidoSettleWait = 5 * time.Second
)

type RapidoOptions struct {
	SettleWait    time.Duration
	StrictPairing bool
}

// Rapido reads the public route page of m.rapido.bike. It needs both place names.
type Rapido struct {
	renderer render.Renderer
	opts     RapidoOptions
	pairing  pairing
	log      logger.Logger
}

func NewRapido(renderer render.Renderer, opts RapidoOptions, log logger.Logger) *Rapido {
	if opts.SettleWait <= 0 {
		opts.SettleWait = DefaultRapidoSettleWait
	}
	return &Rapido{
		renderer: renderer,
		opts:     opts,
		pairing:  pairing{strict: opts.StrictPairing, log: log},
		log:      log,
	}
}

func (r *Rapido) Name() string { return types.ProviderRapido }

func RapidoURL(origin, destination string) string {
	return fmt.Sprintf("https://m.rapido.bike/unup-home/seo/%s/%s?version=v3",
		url.PathEscape(origin),
		url.PathEscape(destination),
	)
}

// CheckRequest requires both place names.
func (r *Rapido) CheckRequest(req models.TripRequest) error {
	return needNames(req)
}

func (r *Rapido) Fetch(ctx context.Context, req models.TripRequest) models.ProviderResult {
	ctx = wrap.WithProvider(ctx, types.ProviderRapido)

	if err := r.CheckRequest(req); err != nil {
		return models.FailedResult(r.Name(), wrap.Error(ctx, err))
	}

	session, err := r.renderer.Open(ctx)
	if err != nil {
		return models.FailedResult(r.Name(), err)
	}
	defer session.Close()

	texts, err := session.Render(ctx, render.Page{
		URL: RapidoURL(req.OriginName(), req.DestinationName()),
		Categories: map[string]string{
			CategoryFleet: rapidoFleetClass,
			CategoryPrice: rapidoPriceClass,
		},
		SettleWait: r.opts.SettleWait,
	})
	if err != nil {
		r.log.Error(ctx, "rapido page render failed", err)
		return models.FailedResult(r.Name(), err)
	}

	fleets := make([]string, 0, len(texts[CategoryFleet]))
	for _, block := range texts[CategoryFleet] {
		fleets = append(fleets, FirstLine(block))
	}
	prices := make([]string, 0, len(texts[CategoryPrice]))
	for _, block := range texts[CategoryPrice] {
		prices = append(prices, LineAt(block, rapidoPriceLine))
	}

	options, err := r.pairing.pair(ctx, r.Name(), fleets, prices)
	if err != nil {
		return models.FailedResult(r.Name(), wrap.Error(ctx, err))
	}

	return models.SucceededResult(r.Name(), options)
}
