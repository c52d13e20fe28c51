package bigdata

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Trigger the analytics batch pipeline",
	Long:  `Runs the analytics batch pipeline on demand instead of waiting for the scheduled run.`,
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		result, err := gestoryClient.RunBatchProcessing(cobraCmd.Context())
		if err != nil {
			return fmt.Errorf("failed to run batch processing: %w", err)
		}

		pterm.Success.Println(result.Message)
		fmt.Printf("Records processed: %d\n", result.Processed)
		return nil
	},
}
