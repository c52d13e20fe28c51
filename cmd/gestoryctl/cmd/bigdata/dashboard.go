package bigdata

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

var (
	dashboardStart string
	dashboardEnd   string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the analytics dashboard",
	Long:  `Shows aggregate campus analytics, optionally bounded by --start and --end (YYYY-MM-DD).`,
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		stats, err := gestoryClient.GetDashboardStats(cobraCmd.Context(), sdk.StatsRange{
			StartDate: dashboardStart,
			EndDate:   dashboardEnd,
		})
		if err != nil {
			return fmt.Errorf("failed to get dashboard stats: %w", err)
		}

		pterm.DefaultSection.Println("Campus Analytics")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "TOTAL_EVENTS\t%d\n", stats.TotalEvents)
		fmt.Fprintf(w, "TOTAL_BUILDINGS\t%d\n", stats.TotalBuildings)
		fmt.Fprintf(w, "TOTAL_ATTENDANCE\t%d\n", stats.TotalAttendance)
		fmt.Fprintf(w, "AVG_OCCUPANCY\t%.1f%%\n", stats.AverageOccupancy)
		w.Flush()

		printBreakdown("Events by Category", stats.EventsByCategory)
		printBreakdown("Events by Status", stats.EventsByStatus)
		return nil
	},
}

func printBreakdown(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pterm.DefaultSection.Println(title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%d\n", k, counts[k])
	}
	w.Flush()
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardStart, "start", "", "Start date (YYYY-MM-DD)")
	dashboardCmd.Flags().StringVar(&dashboardEnd, "end", "", "End date (YYYY-MM-DD)")
}
