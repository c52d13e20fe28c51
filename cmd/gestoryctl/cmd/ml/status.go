package ml

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show prediction service health",
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		status, err := gestoryClient.GetMLStatus(cobraCmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get prediction service status: %w", err)
		}

		pterm.DefaultSection.Println("Prediction Service")
		if status.Available {
			pterm.Success.Println("Service available")
		} else {
			pterm.Warning.Println("Service unavailable")
		}
		if status.Version != "" {
			pterm.Info.Printf("Model version: %s\n", status.Version)
		}
		if status.LastTrained != "" {
			pterm.Info.Printf("Last trained: %s\n", status.LastTrained)
		}
		return nil
	},
}
