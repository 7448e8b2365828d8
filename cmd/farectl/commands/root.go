package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Temutjin2k/ride-fare-aggregator/config"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/archive"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/app/microservices"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/service/fare"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
)

var (
	configPath string
	output     string
	fixture    bool
	engine     string
	archiveDir string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "farectl",
	Short:         "farectl fetches ride fares from the command line, one trip per run.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config-path", "config.yaml", "Path to the config yaml file")
	flags.StringVarP(&output, "output", "o", outputJSON, "Output format: json or table")
	flags.BoolVar(&fixture, "fixture", false, "Use canned provider data instead of rendering pages")
	flags.StringVar(&engine, "engine", "", "Render engine override: chrome or static")
	flags.StringVar(&archiveDir, "archive-dir", "", "Also write the report as JSON into this directory")
	flags.StringVar(&logLevel, "log-level", logger.LevelWarn, "Log level, logs go to stderr")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newService builds a fare service for the providers named in only, using
// the same configuration as the HTTP service. Persistence other than the
// optional archive is never wired.
func newService(only ...string) (*fare.Service, error) {
	if output != outputJSON && output != outputTable {
		return nil, fmt.Errorf("unknown output %q: want %s or %s", output, outputJSON, outputTable)
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return nil, err
	}
	if fixture {
		cfg.Providers.Mode = types.ProvidersFixture
	}
	if engine != "" {
		cfg.Render.Engine = engine
	}
	cfg.Providers.Enabled = only

	log := logger.New(os.Stderr, "farectl", logLevel)

	providers, err := microservices.NewProviders(*cfg, log)
	if err != nil {
		return nil, err
	}

	var opts []fare.Option
	if archiveDir != "" {
		opts = append(opts, fare.WithArchive(archive.New(archiveDir, log)))
	}

	return fare.NewService(providers, fare.NewAggregator(cfg.Providers.MaxParallelFetches, log), log, opts...), nil
}

// run fetches req and prints the report. A provider failure makes the
// command fail after the report is printed.
func run(cmd *cobra.Command, req models.TripRequest, only ...string) error {
	svc, err := newService(only...)
	if err != nil {
		return err
	}

	report, err := svc.Handle(cmd.Context(), req)
	if err != nil {
		return err
	}

	if err := printReport(cmd.OutOrStdout(), output, report); err != nil {
		return err
	}

	for _, name := range report.Providers() {
		if res, _ := report.Result(name); res.Failed() {
			return fmt.Errorf("%s: %s", name, res.Error)
		}
	}
	return nil
}
