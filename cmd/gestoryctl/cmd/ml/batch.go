package ml

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var batchCmd = &cobra.Command{
	Use:   "batch <event-id>...",
	Short: "Predict attendance for multiple events",
	Long:  `Requests attendance forecasts for several events at once, sorted by predicted attendance.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		preds, err := gestoryClient.GetBatchPredictions(cobraCmd.Context(), args)
		if err != nil {
			return fmt.Errorf("failed to get batch predictions: %w", err)
		}

		if len(preds) == 0 {
			fmt.Println("No predictions returned")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "EVENT\tPREDICTED\tCONFIDENCE")
		for _, p := range preds {
			title := p.Title
			if title == "" {
				title = p.EventID
			}
			fmt.Fprintf(w, "%s\t%d\t%.0f%%\n", title, p.Predicted, p.Confidence*100)
		}
		w.Flush()
		return nil
	},
}
