package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
)

// Render categories read from every provider page.
const (
	CategoryFleet = "fleet"
	CategoryPrice = "price"
)

// LineAt returns line idx of a newline separated block, or "N/A" when the
// block has fewer lines or that line is blank.
func LineAt(block string, idx int) string {
	lines := strings.Split(block, "\n")
	if idx < 0 || idx >= len(lines) || strings.TrimSpace(lines[idx]) == "" {
		return types.PriceNotAvailable
	}
	return lines[idx]
}

// FirstLine returns the first line of block.
func FirstLine(block string) string {
	first, _, _ := strings.Cut(block, "\n")
	return first
}

// Pair zips fleets and prices by position. The shorter sequence wins and the
// tail of the longer one is dropped.
func Pair(fleets, prices []string) []models.FareOption {
	n := min(len(fleets), len(prices))
	options := make([]models.FareOption, 0, n)
	for i := range n {
		options = append(options, models.FareOption{FleetLabel: fleets[i], PriceText: prices[i]})
	}
	return options
}

// pairing holds the mismatch policy shared by the live adapters.
type pairing struct {
	strict bool
	log    logger.Logger
}

// pair zips the extracted sequences. A count mismatch is logged and counted;
// in strict mode it fails the fetch with ErrExtractionMismatch.
func (p pairing) pair(ctx context.Context, provider string, fleets, prices []string) ([]models.FareOption, error) {
	if len(fleets) != len(prices) {
		metrics.ProviderPairingMismatchTotal.WithLabelValues(provider).Inc()
		p.log.Warn(wrap.WithAction(ctx, types.ActionPairMismatch), "fleet and price counts differ",
			"fleets", len(fleets),
			"prices", len(prices),
		)
		if p.strict {
			return nil, fmt.Errorf("%w: %d fleets, %d prices", types.ErrExtractionMismatch, len(fleets), len(prices))
		}
	}
	return Pair(fleets, prices), nil
}
