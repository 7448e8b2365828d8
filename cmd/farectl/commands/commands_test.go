package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/uuid"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--config-path", t.TempDir()+"/missing.yaml"))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRapidoCommand_Fixture(t *testing.T) {
	out, err := execute(t, "rapido", "--fixture", "--from", "Koramangala", "--to", "Indiranagar", "-o", "json")
	require.NoError(t, err)

	var env models.FareEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	require.Equal(t, "Koramangala", env.PlaceName)
	require.Len(t, env.Rapido, 4)
	require.Nil(t, env.Uber)
}

func TestCompareCommand_Table(t *testing.T) {
	out, err := execute(t, "compare", "--fixture", "-o", "table",
		"--from", "A", "--to", "B",
		"--pickup-lat", "12.9", "--pickup-lng", "77.6",
		"--drop-lat", "13.0", "--drop-lng", "77.7",
	)
	require.NoError(t, err)
	require.Contains(t, out, "A -> B")
	require.Contains(t, out, "Uber Go")
	require.Contains(t, out, "Cab Premium")
}

func TestUberCommand_MissingFlags(t *testing.T) {
	_, err := execute(t, "uber", "--fixture", "--pickup-lat", "1")
	require.Error(t, err)
}

func TestRenderTable_FailedProvider(t *testing.T) {
	report := models.NewFareReport(uuid.MustNew(), models.NewTripRequest("", "", nil, nil), map[string]models.ProviderResult{
		types.ProviderUber: models.FailedResult(types.ProviderUber, types.ErrLoadTimeout),
	}, time.Now())

	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, outputTable, report))
	require.Contains(t, buf.String(), "error: "+types.ErrLoadTimeout.Error())
	require.Contains(t, buf.String(), "- -> -")
}
