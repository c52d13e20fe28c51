package ml

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

var saturationDate string

var saturationCmd = &cobra.Command{
	Use:   "saturation <building|event> <id>",
	Short: "Predict saturation for a building or event",
	Long:  `Shows how full a building or event is expected to get, for --date (YYYY-MM-DD) or today.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		pred, err := gestoryClient.GetSaturationPrediction(cobraCmd.Context(), sdk.SaturationTarget(args[0]), args[1], saturationDate)
		if err != nil {
			return fmt.Errorf("failed to get saturation prediction: %w", err)
		}

		pterm.DefaultSection.Println("Saturation Prediction")
		pterm.Info.Printf("%s %s: %.0f%% full\n", pred.Target, pred.ID, pred.Level*100)
		if pred.Risk != "" {
			pterm.Warning.Printf("Risk level: %s\n", pred.Risk)
		}
		return nil
	},
}

func init() {
	saturationCmd.Flags().StringVar(&saturationDate, "date", "", "Forecast date (YYYY-MM-DD, default today)")
}
