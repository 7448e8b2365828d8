package models

import (
	"time"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

// RapidoFare is a Rapido option as it appears in the envelope. Rapido quotes
// a range, hence the key.
type RapidoFare struct {
	FleetLabel string `json:"fleet"`
	PriceRange string `json:"price_range"`
}

// FareEnvelope is the flat shape returned by POST /get_fare_data and written
// to the archive. Provider lists are nil when the provider was not asked and
// empty when it was asked but returned nothing.
type FareEnvelope struct {
	ReportID        uuid.UUID         `json:"report_id"`
	CapturedAt      time.Time         `json:"captured_at"`
	PlaceName       string            `json:"place_name"`
	DestinationName string            `json:"destination_name"`
	PickupCoords    *[2]float64       `json:"pickup_coords,omitempty"`
	DropCoords      *[2]float64       `json:"drop_coords,omitempty"`
	Uber            []FareOption      `json:"uber,omitzero"`
	Rapido          []RapidoFare      `json:"rapido,omitzero"`
	Errors          map[string]string `json:"errors"`
}

func NewFareEnvelope(r FareReport) FareEnvelope {
	env := FareEnvelope{
		ReportID:        r.ID,
		CapturedAt:      r.CapturedAt,
		PlaceName:       r.Request.OriginName(),
		DestinationName: r.Request.DestinationName(),
		Errors:          map[string]string{},
	}
	if c, ok := r.Request.PickupCoords(); ok {
		p := c.Pair()
		env.PickupCoords = &p
	}
	if c, ok := r.Request.DropCoords(); ok {
		p := c.Pair()
		env.DropCoords = &p
	}

	for name, res := range r.Results {
		if res.Failed() {
			env.Errors[name] = res.Error
		}
		switch name {
		case types.ProviderUber:
			env.Uber = append([]FareOption{}, res.Options...)
		case types.ProviderRapido:
			env.Rapido = make([]RapidoFare, 0, len(res.Options))
			for _, o := range res.Options {
				env.Rapido = append(env.Rapido, RapidoFare{FleetLabel: o.FleetLabel, PriceRange: o.PriceText})
			}
		}
	}

	return env
}
