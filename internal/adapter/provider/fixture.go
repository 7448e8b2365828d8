package provider

import (
	"context"
	"fmt"
	"slices"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
)

// Fixture answers with canned options and never touches the network. It
// checks the request the same way the live adapter of the same provider does.
type Fixture struct {
	name    string
	options []models.FareOption
	needs   func(models.TripRequest) error
}

// NewFixture returns a fixture for provider. Unknown names get no canned
// options and no request checks.
func NewFixture(provider string) *Fixture {
	f := &Fixture{name: provider, needs: func(models.TripRequest) error { return nil }}
	switch provider {
	case types.ProviderUber:
		f.options = Pair(uberFixtureFleets, uberFixturePrices)
		f.needs = needCoords
	case types.ProviderRapido:
		f.options = Pair(rapidoFixtureFleets, rapidoFixturePrices)
		f.needs = needNames
	}
	return f
}

func (f *Fixture) Name() string { return f.name }

func (f *Fixture) CheckRequest(req models.TripRequest) error {
	return f.needs(req)
}

func (f *Fixture) Fetch(ctx context.Context, req models.TripRequest) models.ProviderResult {
	ctx = wrap.WithProvider(ctx, f.name)
	if err := f.CheckRequest(req); err != nil {
		return models.FailedResult(f.name, wrap.Error(ctx, err))
	}
	return models.SucceededResult(f.name, slices.Clone(f.options))
}

func needCoords(req models.TripRequest) error {
	if !req.HasCoords() {
		return fmt.Errorf("%w: pickup and drop coordinates are required", types.ErrInvalidRequest)
	}
	return nil
}

func needNames(req models.TripRequest) error {
	if !req.HasNames() {
		return fmt.Errorf("%w: place and destination names are required", types.ErrInvalidRequest)
	}
	return nil
}

var (
	uberFixtureFleets = []string{
		"Uber Go", "Moto", "Premier", "UberXL", "Moto Saver", "Auto",
		"Go Sedan", "Courier", "Green", "XL+ (Innova)", "Uber Pet",
	}
	uberFixturePrices = []string{
		"₹153.96", "₹140.55", "₹272.35", "₹240.26", "₹119.52", "₹240.45",
		"₹157.34", "₹83.06", "₹240.72", "Select Time", "₹282.03",
	}

	rapidoFixtureFleets = []string{"Bike", "Auto", "Cab Non AC", "Cab Premium"}
	rapidoFixturePrices = []string{"₹ 134 - ₹ 163", "₹ 228 - ₹ 279", "₹ 172 - ₹ 211", "₹ 218 - ₹ 267"}
)
