package ml

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var mobilityDate string

var mobilityCmd = &cobra.Command{
	Use:   "mobility <building-id>",
	Short: "Predict foot traffic around a building",
	Long:  `Shows the hourly foot traffic forecast for a building, for --date (YYYY-MM-DD) or today.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		pred, err := gestoryClient.GetMobilityPrediction(cobraCmd.Context(), args[0], mobilityDate)
		if err != nil {
			return fmt.Errorf("failed to get mobility prediction: %w", err)
		}

		pterm.DefaultSection.Println("Mobility Prediction")
		pterm.Info.Printf("Building %s, peak demand %.1f\n", pred.BuildingID, pred.Peak)

		grid := pred.HourlyGrid()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "HOUR\tDEMAND")
		for hour, demand := range grid {
			fmt.Fprintf(w, "%02d:00\t%.1f\n", hour, demand)
		}
		w.Flush()
		return nil
	},
}

func init() {
	mobilityCmd.Flags().StringVar(&mobilityDate, "date", "", "Forecast date (YYYY-MM-DD, default today)")
}
