package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
)

func decodeLast(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestLogger_CopiesLogCtxFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "fare-service", LevelDebug)

	ctx := wrap.WithRequestID(context.Background(), "req-1")
	ctx = wrap.WithProvider(ctx, "uber")
	ctx = wrap.WithAction(ctx, "fetch_fares")

	l.Info(ctx, "fetched", "options", 3)

	rec := decodeLast(t, &buf)
	require.Equal(t, "fetched", rec["message"])
	require.Equal(t, "fare-service", rec["service"])
	require.Equal(t, "req-1", rec["request_id"])
	require.Equal(t, "uber", rec["provider"])
	require.Equal(t, "fetch_fares", rec["action"])
	require.EqualValues(t, 3, rec["options"])
	require.Contains(t, rec, "timestamp")
}

func TestLogger_ErrorCtxRestoresOrigin(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "fare-service", LevelDebug)

	origin := wrap.WithAction(context.Background(), "render_page")
	err := wrap.Error(origin, errors.New("boom"))

	l.Error(wrap.ErrorCtx(context.Background(), err), "provider failed", err)

	rec := decodeLast(t, &buf)
	require.Equal(t, "render_page", rec["action"])
	require.Equal(t, map[string]any{"msg": "boom"}, rec["error"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "svc", LevelWarn)

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "hidden")
	require.Zero(t, buf.Len())

	l.Warn(context.Background(), "shown")
	require.NotZero(t, buf.Len())
}

func TestValidateLogLevel(t *testing.T) {
	require.True(t, ValidateLogLevel(LevelInfo))
	require.False(t, ValidateLogLevel("TRACE"))
}
