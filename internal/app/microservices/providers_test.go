package microservices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-fare-aggregator/config"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/provider"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render/chrome"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render/static"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
)

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(config.RenderConfig{Engine: types.RenderChrome}, logger.Discard())
	require.NoError(t, err)
	require.IsType(t, &chrome.Renderer{}, r)

	r, err = NewRenderer(config.RenderConfig{Engine: types.RenderStatic}, logger.Discard())
	require.NoError(t, err)
	require.IsType(t, &static.Renderer{}, r)

	_, err = NewRenderer(config.RenderConfig{Engine: "firefox"}, logger.Discard())
	require.Error(t, err)
}

func TestNewProviders_Fixture(t *testing.T) {
	var cfg config.Config
	cfg.Providers.Mode = types.ProvidersFixture
	cfg.Providers.Enabled = []string{types.ProviderRapido, types.ProviderUber}

	providers, err := NewProviders(cfg, logger.Discard())
	require.NoError(t, err)
	require.Len(t, providers, 2)
	require.Equal(t, types.ProviderRapido, providers[0].Name())
	require.IsType(t, &provider.Fixture{}, providers[1])

	res := providers[0].Fetch(context.Background(), models.NewTripRequest("a", "b", nil, nil))
	require.False(t, res.Failed())
	require.NotEmpty(t, res.Options)
}

func TestNewProviders_Live(t *testing.T) {
	var cfg config.Config
	cfg.Providers.Mode = types.ProvidersLive
	cfg.Providers.Enabled = []string{types.ProviderUber, types.ProviderRapido}
	cfg.Render.Engine = types.RenderStatic

	providers, err := NewProviders(cfg, logger.Discard())
	require.NoError(t, err)
	require.IsType(t, &provider.Uber{}, providers[0])
	require.IsType(t, &provider.Rapido{}, providers[1])
}

func TestRenderConfigFor_ProfileOnlyForUber(t *testing.T) {
	cfg := config.RenderConfig{
		Engine:           types.RenderChrome,
		UserDataDir:      "/home/fares/.config/chromium",
		ProfileDirectory: "Profile 1",
		UserAgent:        "ua",
	}

	uber := RenderConfigFor(cfg, types.ProviderUber)
	require.Equal(t, cfg, uber)

	rapido := RenderConfigFor(cfg, types.ProviderRapido)
	require.Empty(t, rapido.UserDataDir)
	require.Empty(t, rapido.ProfileDirectory)
	require.Equal(t, "ua", rapido.UserAgent)

	// the caller's config is left alone
	require.Equal(t, "Profile 1", cfg.ProfileDirectory)
}

func TestNewProviders_Errors(t *testing.T) {
	var cfg config.Config
	cfg.Providers.Mode = types.ProvidersLive
	_, err := NewProviders(cfg, logger.Discard())
	require.Error(t, err)

	cfg.Providers.Enabled = []string{"ola"}
	cfg.Render.Engine = types.RenderStatic
	_, err = NewProviders(cfg, logger.Discard())
	require.ErrorIs(t, err, types.ErrUnknownProvider)
}
