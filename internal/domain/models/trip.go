package models

import (
	"encoding/json"
	"strings"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pair returns the point as [lat, lng], the shape used by response envelopes.
func (c Coordinates) Pair() [2]float64 {
	return [2]float64{c.Lat, c.Lng}
}

// TripRequest is the canonical input of a fare lookup. Place names and
// coordinates may each be absent; providers check what they need.
// The zero value is an empty request. A TripRequest is immutable once built.
type TripRequest struct {
	originName      string
	destinationName string
	pickup          *Coordinates
	drop            *Coordinates
}

// NewTripRequest trims the names and copies the coordinates so later changes
// by the caller do not leak into the request.
func NewTripRequest(originName, destinationName string, pickup, drop *Coordinates) TripRequest {
	t := TripRequest{
		originName:      strings.TrimSpace(originName),
		destinationName: strings.TrimSpace(destinationName),
	}
	if pickup != nil {
		p := *pickup
		t.pickup = &p
	}
	if drop != nil {
		d := *drop
		t.drop = &d
	}
	return t
}

func (t TripRequest) OriginName() string      { return t.originName }
func (t TripRequest) DestinationName() string { return t.destinationName }

// PickupCoords returns the pickup point and whether it is set.
func (t TripRequest) PickupCoords() (Coordinates, bool) {
	if t.pickup == nil {
		return Coordinates{}, false
	}
	return *t.pickup, true
}

// DropCoords returns the drop point and whether it is set.
func (t TripRequest) DropCoords() (Coordinates, bool) {
	if t.drop == nil {
		return Coordinates{}, false
	}
	return *t.drop, true
}

// HasNames reports whether both place names are present.
func (t TripRequest) HasNames() bool {
	return t.originName != "" && t.destinationName != ""
}

// HasCoords reports whether both pickup and drop coordinates are present.
func (t TripRequest) HasCoords() bool {
	return t.pickup != nil && t.drop != nil
}

type tripJSON struct {
	OriginName      string       `json:"place_name,omitempty"`
	DestinationName string       `json:"destination_name,omitempty"`
	Pickup          *Coordinates `json:"pickup_coords,omitempty"`
	Drop            *Coordinates `json:"drop_coords,omitempty"`
}

func (t TripRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(tripJSON{
		OriginName:      t.originName,
		DestinationName: t.destinationName,
		Pickup:          t.pickup,
		Drop:            t.drop,
	})
}

func (t *TripRequest) UnmarshalJSON(data []byte) error {
	var raw tripJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = NewTripRequest(raw.OriginName, raw.DestinationName, raw.Pickup, raw.Drop)
	return nil
}
