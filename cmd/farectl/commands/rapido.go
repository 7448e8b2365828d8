package commands

import (
	"github.com/spf13/cobra"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
)

var rapidoFrom, rapidoTo string

func init() {
	rapidoCmd.Flags().StringVar(&rapidoFrom, "from", "", "Origin place name")
	rapidoCmd.Flags().StringVar(&rapidoTo, "to", "", "Destination place name")
	_ = rapidoCmd.MarkFlagRequired("from")
	_ = rapidoCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(rapidoCmd)
}

var rapidoCmd = &cobra.Command{
	Use:   "rapido --from <place> --to <place>",
	Short: "Fetches Rapido fares between two place names.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.NewTripRequest(rapidoFrom, rapidoTo, nil, nil)
		return run(cmd, req, types.ProviderRapido)
	},
}
