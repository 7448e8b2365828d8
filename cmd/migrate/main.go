// Command migrate applies the fare_reports schema to the configured database.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Temutjin2k/ride-fare-aggregator/config"
	repo "github.com/Temutjin2k/ride-fare-aggregator/internal/adapter/postgres"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/postgres"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	// short timeout for migration operations
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := repo.Migrate(ctx, client.Pool); err != nil {
		log.Fatal(err)
	}
	log.Println("migrations applied")
}
