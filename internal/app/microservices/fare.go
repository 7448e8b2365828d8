package microservices

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/ride-fare-aggregator/config"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/archive"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/http/server"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/locationIQ"
	repo "github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/postgres"
	broker "github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/rabbit"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/service/fare"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/postgres"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/rabbit"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/trm"
)

type FareService struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	httpServer *server.API
	cfg        config.Config
	log        logger.Logger
}

// NewFare wires the fare service. Archive, database, broker and geocoder are
// optional and only built when enabled in cfg.
func NewFare(ctx context.Context, cfg config.Config, log logger.Logger) (*FareService, error) {
	ctx = wrap.WithAction(ctx, "fare_service_init")
	s := &FareService{cfg: cfg, log: log}

	providers, err := NewProviders(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to setup providers", err)
		return nil, err
	}

	var opts []fare.Option

	if cfg.Archive.Enabled {
		opts = append(opts, fare.WithArchive(archive.New(cfg.Archive.Dir, log)))
	}

	if cfg.Database.Enabled {
		s.postgresDB, err = postgres.New(ctx, cfg.Database)
		if err != nil {
			log.Error(ctx, "Failed to setup database", err)
			return nil, err
		}
		if err := repo.Migrate(ctx, s.postgresDB.Pool); err != nil {
			s.close(ctx)
			log.Error(ctx, "Failed to migrate database", err)
			return nil, err
		}
		opts = append(opts, fare.WithRepository(repo.NewReportRepo(s.postgresDB.Pool, trm.New(s.postgresDB.Pool))))
	}

	if cfg.RabbitMQ.Enabled {
		s.rabbitMQ, err = rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			s.close(ctx)
			log.Error(ctx, "Failed to setup rabbitMQ", err)
			return nil, err
		}
		if err := s.rabbitMQ.DeclareExchange(ctx, cfg.RabbitMQ.Exchange); err != nil {
			s.close(ctx)
			log.Error(ctx, "Failed to declare exchange", err, "exchange", cfg.RabbitMQ.Exchange)
			return nil, err
		}
		opts = append(opts, fare.WithPublisher(broker.NewFareBroker(s.rabbitMQ, cfg.RabbitMQ.Exchange)))
	}

	if cfg.LocationIQ.APIKey != "" {
		opts = append(opts, fare.WithLocationSearch(locationIQ.New(cfg.LocationIQ.APIKey, cfg.LocationIQ.BaseURL, cfg.LocationIQ.Timeout)))
	} else {
		log.Info(ctx, "location suggestions disabled: no LocationIQ api key")
	}

	fareService := fare.NewService(providers, fare.NewAggregator(cfg.Providers.MaxParallelFetches, log), log, opts...)

	s.httpServer, err = server.New(cfg, fareService, log)
	if err != nil {
		s.close(ctx)
		log.Error(ctx, "Failed to setup http server", err)
		return nil, fmt.Errorf("http server: %w", err)
	}

	return s, nil
}

func (s *FareService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "fare service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "fare service started", "providers", s.cfg.Providers.Enabled, "providers_mode", s.cfg.Providers.Mode)

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *FareService) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to close rabbitMQ connection", "error", err.Error())
		}
	}

	s.postgresDB.Close()
}
