package bigdata

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

var (
	eventsStart  string
	eventsEnd    string
	eventsStatus string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show per-event attendance statistics",
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		stats, err := gestoryClient.GetEventStats(cobraCmd.Context(), sdk.EventStatsFilter{
			StatsRange: sdk.StatsRange{StartDate: eventsStart, EndDate: eventsEnd},
			Status:     sdk.EventStatus(eventsStatus),
		})
		if err != nil {
			return fmt.Errorf("failed to get event stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No statistics available")
			return nil
		}

		sort.Slice(stats, func(i, j int) bool { return stats[i].Attendance > stats[j].Attendance })

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "EVENT\tSTATUS\tATTENDANCE\tCAPACITY")
		for _, s := range stats {
			capacity := "-"
			if s.Capacity > 0 {
				capacity = fmt.Sprintf("%d", s.Capacity)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Title, s.Status, s.Attendance, capacity)
		}
		w.Flush()
		return nil
	},
}

func init() {
	eventsCmd.Flags().StringVar(&eventsStart, "start", "", "Start date (YYYY-MM-DD)")
	eventsCmd.Flags().StringVar(&eventsEnd, "end", "", "End date (YYYY-MM-DD)")
	eventsCmd.Flags().StringVar(&eventsStatus, "status", "", "Limit to one event status")
}
