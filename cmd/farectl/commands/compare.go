package commands

import (
	"github.com/spf13/cobra"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
)

var (
	compareFrom, compareTo     string
	comparePickup, compareDrop models.Coordinates
	compareProviders           []string
)

func init() {
	f := compareCmd.Flags()
	f.StringVar(&compareFrom, "from", "", "Origin place name")
	f.StringVar(&compareTo, "to", "", "Destination place name")
	f.Float64Var(&comparePickup.Lat, "pickup-lat", 0, "Pickup latitude")
	f.Float64Var(&comparePickup.Lng, "pickup-lng", 0, "Pickup longitude")
	f.Float64Var(&compareDrop.Lat, "drop-lat", 0, "Drop latitude")
	f.Float64Var(&compareDrop.Lng, "drop-lng", 0, "Drop longitude")
	f.StringSliceVar(&compareProviders, "providers", types.KnownProviders, "Providers to ask")
	for _, name := range []string{"from", "to", "pickup-lat", "pickup-lng", "drop-lat", "drop-lng"} {
		_ = compareCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare --from <place> --to <place> --pickup-lat <lat> --pickup-lng <lng> --drop-lat <lat> --drop-lng <lng>",
	Short: "Fetches fares from every provider for one trip and prints them side by side.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.NewTripRequest(compareFrom, compareTo, &comparePickup, &compareDrop)
		return run(cmd, req, compareProviders...)
	},
}
