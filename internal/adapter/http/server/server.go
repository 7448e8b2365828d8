package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Temutjin2k/ride-fare-aggregator/config"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/http/handler"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/http/middleware"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
)

type API struct {
	mode   types.ServiceMode
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health *handler.Health
	fare   *handler.Fare
}

func New(cfg config.Config, fareService handler.FareService, logger logger.Logger) (*API, error) {
	if fareService == nil {
		return nil, errors.New("fare service is required")
	}
	if cfg.Mode != types.FareService {
		return nil, fmt.Errorf("invalid mode: %s", cfg.Mode)
	}

	api := &API{
		mode: cfg.Mode,
		mux:  http.NewServeMux(),
		routes: &handlers{
			health: handler.NewHealth(string(cfg.Mode), fareService.Providers(), logger),
			fare:   handler.NewFare(fareService, cfg.RideOptions.IncludeUber, logger),
		},
		m:    middleware.NewMiddleware(string(cfg.Mode), logger),
		addr: net.JoinHostPort("0.0.0.0", cfg.Server.Port),
		cfg:  cfg,
		log:  logger,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// Handler returns the mux wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(a.mux))))
}
