package microservices

import (
	"fmt"

	"github.com/Temutjin2k/ride-fare-aggregator/config"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/provider"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render/chrome"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/render/static"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/service/fare"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
)

// NewRenderer returns the render collaborator selected by cfg.Engine.
func NewRenderer(cfg config.RenderConfig, log logger.Logger) (render.Renderer, error) {
	switch cfg.Engine {
	case types.RenderChrome:
		return chrome.New(chrome.Config{
			Headless:         cfg.Headless,
			ExecPath:         cfg.ExecPath,
			UserDataDir:      cfg.UserDataDir,
			ProfileDirectory: cfg.ProfileDirectory,
			UserAgent:        cfg.UserAgent,
			RequestTimeout:   cfg.RequestTimeout,
		}, log), nil
	case types.RenderStatic:
		return static.New(static.Config{
			UserAgent:      cfg.UserAgent,
			RequestTimeout: cfg.RequestTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown render engine %q", cfg.Engine)
	}
}

// RenderConfigFor returns the render settings of one provider. Only Uber
// needs a signed-in browser profile; every other provider runs on a fresh
// temporary profile so its sessions never share a user data dir.
func RenderConfigFor(cfg config.RenderConfig, providerName string) config.RenderConfig {
	if providerName != types.ProviderUber {
		cfg.UserDataDir = ""
		cfg.ProfileDirectory = ""
	}
	return cfg
}

// NewProviders builds the enabled providers in configured order, each with
// its own renderer. Fixture mode never creates a renderer.
func NewProviders(cfg config.Config, log logger.Logger) ([]fare.Provider, error) {
	if len(cfg.Providers.Enabled) == 0 {
		return nil, fmt.Errorf("no providers enabled")
	}

	if cfg.Providers.Mode == types.ProvidersFixture {
		providers := make([]fare.Provider, 0, len(cfg.Providers.Enabled))
		for _, name := range cfg.Providers.Enabled {
			providers = append(providers, provider.NewFixture(name))
		}
		return providers, nil
	}

	providers := make([]fare.Provider, 0, len(cfg.Providers.Enabled))
	for _, name := range cfg.Providers.Enabled {
		renderer, err := NewRenderer(RenderConfigFor(cfg.Render, name), log)
		if err != nil {
			return nil, err
		}

		switch name {
		case types.ProviderUber:
			providers = append(providers, provider.NewUber(renderer, provider.UberOptions{
				MarkerTimeout: cfg.Render.MarkerTimeout,
				StrictPairing: cfg.Providers.StrictPairing,
			}, log))
		case types.ProviderRapido:
			providers = append(providers, provider.NewRapido(renderer, provider.RapidoOptions{
				SettleWait:    cfg.Render.SettleWait,
				StrictPairing: cfg.Providers.StrictPairing,
			}, log))
		default:
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownProvider, name)
		}
	}
	return providers, nil
}
