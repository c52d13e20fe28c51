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
	buildingsStart string
	buildingsEnd   string
	buildingsID    string
)

var buildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "Show per-building usage statistics",
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		stats, err := gestoryClient.GetBuildingStats(cobraCmd.Context(), sdk.BuildingStatsFilter{
			StatsRange: sdk.StatsRange{StartDate: buildingsStart, EndDate: buildingsEnd},
			BuildingID: buildingsID,
		})
		if err != nil {
			return fmt.Errorf("failed to get building stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No statistics available")
			return nil
		}

		sort.Slice(stats, func(i, j int) bool { return stats[i].Attendance > stats[j].Attendance })

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "BUILDING\tEVENTS\tATTENDANCE\tOCCUPANCY")
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n", s.BuildingName, s.EventCount, s.Attendance, s.Occupancy)
		}
		w.Flush()
		return nil
	},
}

func init() {
	buildingsCmd.Flags().StringVar(&buildingsStart, "start", "", "Start date (YYYY-MM-DD)")
	buildingsCmd.Flags().StringVar(&buildingsEnd, "end", "", "End date (YYYY-MM-DD)")
	buildingsCmd.Flags().StringVar(&buildingsID, "building", "", "Limit to one building ID")
}
