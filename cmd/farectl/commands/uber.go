package commands

import (
	"github.com/spf13/cobra"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
)

var uberPickup, uberDrop models.Coordinates

func init() {
	f := uberCmd.Flags()
	f.Float64Var(&uberPickup.Lat, "pickup-lat", 0, "Pickup latitude")
	f.Float64Var(&uberPickup.Lng, "pickup-lng", 0, "Pickup longitude")
	f.Float64Var(&uberDrop.Lat, "drop-lat", 0, "Drop latitude")
	f.Float64Var(&uberDrop.Lng, "drop-lng", 0, "Drop longitude")
	for _, name := range []string{"pickup-lat", "pickup-lng", "drop-lat", "drop-lng"} {
		_ = uberCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(uberCmd)
}

var uberCmd = &cobra.Command{
	Use:   "uber --pickup-lat <lat> --pickup-lng <lng> --drop-lat <lat> --drop-lng <lng>",
	Short: "Fetches Uber fares between two coordinates.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.NewTripRequest("", "", &uberPickup, &uberDrop)
		return run(cmd, req, types.ProviderUber)
	},
}
