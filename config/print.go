package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const masked = "******"

// PrintConfig writes the effective configuration to stdout with secrets masked.
func PrintConfig(cfg *Config) {
	FprintConfig(os.Stdout, cfg)
}

func FprintConfig(w io.Writer, cfg *Config) {
	line := func(k string, v any) { fmt.Fprintf(w, "  %-32s %v\n", k, v) }

	fmt.Fprintln(w, "configuration:")
	line("mode", cfg.Mode)
	line("server.port", cfg.Server.Port)
	line("providers.mode", cfg.Providers.Mode)
	line("providers.enabled", strings.Join(cfg.Providers.Enabled, ","))
	line("providers.strict_pairing", cfg.Providers.StrictPairing)
	line("providers.max_parallel_fetches", cfg.Providers.MaxParallelFetches)
	line("render.engine", cfg.Render.Engine)
	line("render.headless", cfg.Render.Headless)
	line("render.user_data_dir", cfg.Render.UserDataDir)
	line("render.settle_wait", cfg.Render.SettleWait)
	line("render.marker_timeout", cfg.Render.MarkerTimeout)
	line("archive.enabled", cfg.Archive.Enabled)
	line("archive.dir", cfg.Archive.Dir)
	line("database.enabled", cfg.Database.Enabled)
	line("database.host", cfg.Database.Host+":"+cfg.Database.Port)
	line("database.password", mask(cfg.Database.Password))
	line("rabbitmq.enabled", cfg.RabbitMQ.Enabled)
	line("rabbitmq.host", cfg.RabbitMQ.Host+":"+cfg.RabbitMQ.Port)
	line("rabbitmq.password", mask(cfg.RabbitMQ.Password))
	line("ride_options.include_uber", cfg.RideOptions.IncludeUber)
	line("locationiq.api_key", mask(cfg.LocationIQ.APIKey))
	line("log.level", cfg.Log.Level)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return masked
}
