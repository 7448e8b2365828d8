package locationIQ

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
)

const DefaultBaseURL = "https://us1.locationiq.com"

type LocationIQClient struct {
	apiKey string
	http   *resty.Client
}

func New(apiKey, baseURL string, timeout time.Duration) *LocationIQClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &LocationIQClient{
		apiKey: apiKey,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// searchResult is one Nominatim-style search hit. Coordinates come as strings.
type searchResult struct {
	PlaceID     string `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns at most limit places matching query.
func (c *LocationIQClient) Search(ctx context.Context, query string, limit int) ([]models.Location, error) {
	const op = "LocationIQClient.Search"
	ctx = wrap.WithAction(ctx, "locationiq_search")

	var results []searchResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":    c.apiKey,
			"q":      query,
			"format": "json",
			"limit":  strconv.Itoa(limit),
		}).
		SetResult(&results).
		Get("/v1/search")
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: failed to make request to LocationIQ: %w", op, err))
	}

	switch {
	case resp.StatusCode() == 404:
		// LocationIQ answers 404 "Unable to geocode" for no matches
		return []models.Location{}, nil
	case resp.IsError():
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return nil, wrap.Error(ctx, fmt.Errorf("%s: unexpected response status %d", op, resp.StatusCode()))
	}

	locations := make([]models.Location, 0, min(len(results), limit))
	for _, r := range results {
		if len(locations) == limit {
			break
		}
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%s: failed to parse latitude: %w", op, err))
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, wrap.Error(ctx, fmt.Errorf("%s: failed to parse longitude: %w", op, err))
		}

		name, _, _ := strings.Cut(r.DisplayName, ",")
		locations = append(locations, models.Location{
			ID:        r.PlaceID,
			Name:      strings.TrimSpace(name),
			Address:   r.DisplayName,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return locations, nil
}
