package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Ride fare aggregator

Usage:
  fare [-config-path config.yaml] [-mode fare-service]

Every key of the YAML file maps to an environment variable named after its
path, e.g. render.settle_wait -> RENDER_SETTLE_WAIT. Environment variables win
over the file.

Main settings:
  providers.mode            live | fixture
  providers.enabled         comma separated list: uber,rapido
  providers.strict_pairing  fail a provider when fleet and price counts differ
  render.engine             chrome | static
  render.user_data_dir      browser profile directory (optional)
  archive.dir               directory for per-request JSON reports
  database.enabled          store reports in PostgreSQL
  rabbitmq.enabled          publish fare.report.captured events
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
