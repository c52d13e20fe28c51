package ml

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance <event-id>",
	Short: "Predict attendance for an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		pred, err := gestoryClient.GetAttendancePrediction(cobraCmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get attendance prediction: %w", err)
		}

		title := pred.Title
		if title == "" {
			title = pred.EventID
		}
		pterm.DefaultSection.Println("Attendance Prediction")
		pterm.Info.Printf("%s: %d attendees (confidence %.0f%%)\n", title, pred.Predicted, pred.Confidence*100)

		if len(pred.Factors) > 0 {
			keys := make([]string, 0, len(pred.Factors))
			for k := range pred.Factors {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FACTOR\tWEIGHT")
			for _, k := range keys {
				fmt.Fprintf(w, "%s\t%.2f\n", k, pred.Factors[k])
			}
			w.Flush()
		}
		return nil
	},
}
