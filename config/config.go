package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/configparser"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/validator"
)

// Flags
var (
	modeFlag = flag.String("mode", string(types.FareService), "application mode")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode types.ServiceMode

		Server      ServerConfig
		Providers   ProvidersConfig
		Render      RenderConfig
		Archive     ArchiveConfig
		Database    DatabaseConfig
		RabbitMQ    RabbitMQConfig
		RideOptions RideOptionsConfig
		LocationIQ  LocationIQConfig
		Log         LogConfig
	}

	ServerConfig struct {
		Port              string        `env:"SERVER_PORT" default:"8000"`
		ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
		WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"90s"`
		ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	}

	ProvidersConfig struct {
		// Mode is "live" (render collaborator) or "fixture" (canned data).
		Mode    string   `env:"PROVIDERS_MODE" default:"live"`
		Enabled []string `env:"PROVIDERS_ENABLED" default:"uber,rapido"`

		// StrictPairing turns a fleet/price count mismatch into an error instead of truncating.
		StrictPairing      bool  `env:"PROVIDERS_STRICT_PAIRING" default:"false"`
		MaxParallelFetches int64 `env:"PROVIDERS_MAX_PARALLEL_FETCHES" default:"2"`
	}

	RenderConfig struct {
		// Engine is "chrome" (headless browser) or "static" (plain HTTP + HTML parsing).
		Engine           string        `env:"RENDER_ENGINE" default:"chrome"`
		Headless         bool          `env:"RENDER_HEADLESS" default:"true"`
		ExecPath         string        `env:"RENDER_EXEC_PATH"`
		UserDataDir      string        `env:"RENDER_USER_DATA_DIR"`
		ProfileDirectory string        `env:"RENDER_PROFILE_DIRECTORY"`
		UserAgent        string        `env:"RENDER_USER_AGENT" default:"Mozilla/5.0 (Linux; Android 13) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Mobile Safari/537.36"`
		SettleWait       time.Duration `env:"RENDER_SETTLE_WAIT" default:"5s"`
		MarkerTimeout    time.Duration `env:"RENDER_MARKER_TIMEOUT" default:"20s"`
		RequestTimeout   time.Duration `env:"RENDER_REQUEST_TIMEOUT" default:"30s"`
	}

	ArchiveConfig struct {
		Enabled bool   `env:"ARCHIVE_ENABLED" default:"true"`
		Dir     string `env:"ARCHIVE_DIR" default:"fare_logs"`
	}

	DatabaseConfig struct {
		Enabled  bool   `env:"DATABASE_ENABLED" default:"false"`
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"fares_user"`
		Password string `env:"DATABASE_PASSWORD" default:"fares_pass"`
		Database string `env:"DATABASE_DATABASE" default:"fares_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"10"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"1"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
		Exchange string `env:"RABBITMQ_EXCHANGE" default:"fare_topic"`
	}

	RideOptionsConfig struct {
		IncludeUber bool `env:"RIDE_OPTIONS_INCLUDE_UBER" default:"false"`
	}

	LocationIQConfig struct {
		APIKey  string        `env:"LOCATIONIQ_API_KEY"`
		BaseURL string        `env:"LOCATIONIQ_BASE_URL" default:"https://us1.locationiq.com"`
		Timeout time.Duration `env:"LOCATIONIQ_TIMEOUT" default:"10s"`
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"INFO"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Tune applies the pool limits to a parsed pgxpool config.
func (c DatabaseConfig) Tune(pc *pgxpool.Config) {
	if c.MaxConns > 0 {
		pc.MaxConns = c.MaxConns
	}
	if c.MinConns > 0 {
		pc.MinConns = c.MinConns
	}
	if c.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = c.MaxConnLifetime
	}
	if c.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = c.MaxConnIdleTime
	}
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}

func (c *Config) validate() error {
	switch c.Providers.Mode {
	case types.ProvidersLive, types.ProvidersFixture:
	default:
		return fmt.Errorf("providers mode %q: want %s or %s", c.Providers.Mode, types.ProvidersLive, types.ProvidersFixture)
	}

	switch c.Render.Engine {
	case types.RenderChrome, types.RenderStatic:
	default:
		return fmt.Errorf("render engine %q: want %s or %s", c.Render.Engine, types.RenderChrome, types.RenderStatic)
	}

	for _, name := range c.Providers.Enabled {
		if !types.IsKnownProvider(name) {
			return fmt.Errorf("unknown provider %q", name)
		}
	}
	if !validator.Unique(c.Providers.Enabled) {
		return fmt.Errorf("providers enabled %v: duplicate names", c.Providers.Enabled)
	}

	if c.Providers.MaxParallelFetches < 1 {
		c.Providers.MaxParallelFetches = 1
	}

	return nil
}
