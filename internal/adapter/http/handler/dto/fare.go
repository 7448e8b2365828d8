package dto

import (
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/validator"
)

const maxPlaceNameLength = 255

// FareRequest is the body of POST /get_fare_data.
type FareRequest struct {
	PlaceName       string              `json:"place_name" example:"Koramangala"`
	DestinationName string              `json:"destination_name" example:"Indiranagar"`
	PickupCoords    *Coordinates `json:"pickup_coords"`
	DropCoords      *Coordinates `json:"drop_coords"`

	// Providers limits the lookup to a subset of the configured providers.
	Providers []string `json:"providers,omitempty" example:"uber,rapido"`
}

// Validate checks shape only. Which fields a provider needs is decided by
// the provider itself.
func (r *FareRequest) Validate(v *validator.Validator) {
	v.Check(len(r.PlaceName) <= maxPlaceNameLength, "place_name", "must not be more than 255 bytes long")
	v.Check(len(r.DestinationName) <= maxPlaceNameLength, "destination_name", "must not be more than 255 bytes long")

	validateCoords(v, "pickup_coords", r.PickupCoords)
	validateCoords(v, "drop_coords", r.DropCoords)

	for _, name := range r.Providers {
		v.Check(types.IsKnownProvider(name), "providers", "unknown provider "+name)
	}
	v.Check(validator.Unique(r.Providers), "providers", "must not contain duplicate values")
}

// ToModel must only be called on a validated request.
func (r *FareRequest) ToModel() models.TripRequest {
	return models.NewTripRequest(r.PlaceName, r.DestinationName, r.PickupCoords.toModel(), r.DropCoords.toModel())
}

// Coordinates is a point as sent by clients. Pointers tell a missing field
// from a zero one.
type Coordinates struct {
	Lat *float64 `json:"lat" example:"12.9352"`
	Lng *float64 `json:"lng" example:"77.6245"`
}

func (c *Coordinates) toModel() *models.Coordinates {
	if c == nil || c.Lat == nil || c.Lng == nil {
		return nil
	}
	return &models.Coordinates{Lat: *c.Lat, Lng: *c.Lng}
}

// validateCoords accepts an absent object but not a partial one.
func validateCoords(v *validator.Validator, key string, c *Coordinates) {
	if c == nil {
		return
	}
	v.Check(c.Lat != nil, key+".lat", "must be provided")
	v.Check(c.Lng != nil, key+".lng", "must be provided")
	if c.Lat != nil {
		v.Check(*c.Lat >= -90 && *c.Lat <= 90, key+".lat", "must be between -90 and 90")
	}
	if c.Lng != nil {
		v.Check(*c.Lng >= -180 && *c.Lng <= 180, key+".lng", "must be between -180 and 180")
	}
}

// RideOptionsQuery is the query of GET /ride-options. Every field is required.
type RideOptionsQuery struct {
	StartPlace       string
	DestinationPlace string
	Pickup           models.Coordinates
	Drop             models.Coordinates
}

func (q *RideOptionsQuery) Validate(v *validator.Validator) {
	v.Check(q.StartPlace != "", "start_place", "must be provided")
	v.Check(q.DestinationPlace != "", "destination_place", "must be provided")
	v.Check(len(q.StartPlace) <= maxPlaceNameLength, "start_place", "must not be more than 255 bytes long")
	v.Check(len(q.DestinationPlace) <= maxPlaceNameLength, "destination_place", "must not be more than 255 bytes long")

	v.Check(q.Pickup.Lat >= -90 && q.Pickup.Lat <= 90, "pickup_lat", "must be between -90 and 90")
	v.Check(q.Pickup.Lng >= -180 && q.Pickup.Lng <= 180, "pickup_lng", "must be between -180 and 180")
	v.Check(q.Drop.Lat >= -90 && q.Drop.Lat <= 90, "drop_lat", "must be between -90 and 90")
	v.Check(q.Drop.Lng >= -180 && q.Drop.Lng <= 180, "drop_lng", "must be between -180 and 180")
}

func (q *RideOptionsQuery) ToModel() models.TripRequest {
	return models.NewTripRequest(q.StartPlace, q.DestinationPlace, &q.Pickup, &q.Drop)
}

// RapidoRideOption is one Rapido option in the /ride-options shape.
type RapidoRideOption struct {
	Fleet string `json:"fleet"`
	Fare  string `json:"fare"`
}

// RapidoRideOptions is either a list of options or an error, never both.
type RapidoRideOptions struct {
	Service     string             `json:"service"`
	Start       string             `json:"start,omitempty"`
	Destination string             `json:"destination,omitempty"`
	Options     []RapidoRideOption `json:"options,omitzero"`
	Error       string             `json:"error,omitempty"`
}

type UberRideOptions struct {
	Service string              `json:"service"`
	Pickup  *[2]float64         `json:"pickup,omitempty"`
	Drop    *[2]float64         `json:"drop,omitempty"`
	Options []models.FareOption `json:"options,omitzero"`
	Error   string              `json:"error,omitempty"`
}

// RideOptionsResponse keys are capitalized to match what existing clients read.
type RideOptionsResponse struct {
	Rapido *RapidoRideOptions `json:"Rapido,omitempty"`
	Uber   *UberRideOptions   `json:"Uber,omitempty"`
}

// NewRideOptionsResponse reshapes a report. Providers absent from the report
// are left out of the response.
func NewRideOptionsResponse(q RideOptionsQuery, report models.FareReport) RideOptionsResponse {
	var resp RideOptionsResponse

	if res, ok := report.Result(types.ProviderRapido); ok {
		r := &RapidoRideOptions{Service: "Rapido"}
		if res.Failed() {
			r.Error = res.Error
		} else {
			r.Start = q.StartPlace
			r.Destination = q.DestinationPlace
			r.Options = make([]RapidoRideOption, 0, len(res.Options))
			for _, o := range res.Options {
				r.Options = append(r.Options, RapidoRideOption{Fleet: o.FleetLabel, Fare: o.PriceText})
			}
		}
		resp.Rapido = r
	}

	if res, ok := report.Result(types.ProviderUber); ok {
		u := &UberRideOptions{Service: "Uber"}
		if res.Failed() {
			u.Error = res.Error
		} else {
			pickup, drop := q.Pickup.Pair(), q.Drop.Pair()
			u.Pickup = &pickup
			u.Drop = &drop
			u.Options = res.Options
		}
		resp.Uber = u
	}

	return resp
}
