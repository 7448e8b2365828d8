package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

func report(origin, dest string) models.FareReport {
	return models.NewFareReport(uuid.MustNew(), models.NewTripRequest(origin, dest, nil, nil),
		map[string]models.ProviderResult{
			"rapido": models.SucceededResult("rapido", []models.FareOption{{FleetLabel: "Bike", PriceText: "₹ 134 - ₹ 163"}}),
		},
		time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC))
}

func TestFileName(t *testing.T) {
	require.Equal(t, "fare_MG Road_Airport_20240501_093015.json", FileName(report("MG Road", "Airport")))
	require.Equal(t, "fare_a_b_c___d_20240501_093015.json", FileName(report("a/b", `c\....d`)))
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fare_logs")
	a := New(dir, logger.Discard())

	r := report("MG Road", "Airport")
	require.NoError(t, a.Save(context.Background(), r))

	data, err := os.ReadFile(filepath.Join(dir, FileName(r)))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, "MG Road", got["place_name"])
	require.Equal(t, r.ID.String(), got["report_id"])
	require.Equal(t, []any{map[string]any{"fleet": "Bike", "price_range": "₹ 134 - ₹ 163"}}, got["rapido"])
}

func TestSave_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err := New(file, logger.Discard()).Save(context.Background(), report("A", "B"))
	require.Error(t, err)
}
