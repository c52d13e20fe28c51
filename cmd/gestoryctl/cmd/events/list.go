package events

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

var (
	listCategory string
	listStatus   string
	listBuilding string
	listDate     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List campus events",
	Long: `Lists events, optionally filtered by category, status, or building.
Valid statuses: programado, en_curso, finalizado, cancelado.`,
	Args: cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		events, err := gestoryClient.ListEvents(cobraCmd.Context(), sdk.EventFilters{
			Category:   listCategory,
			Status:     sdk.EventStatus(listStatus),
			BuildingID: listBuilding,
			Date:       listDate,
		})
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No events found")
			return nil
		}

		sort.Slice(events, func(i, j int) bool { return events[i].DateTime.Before(events[j].DateTime) })

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tBUILDING\tDATE\tCATEGORY\tSTATUS")
		for _, e := range events {
			category := "-"
			if e.Category != "" {
				category = e.Category
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.ID,
				e.Title,
				e.BuildingAssigned,
				e.DateTime.Local().Format(time.RFC3339),
				category,
				e.Status,
			)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")
	listCmd.Flags().StringVar(&listBuilding, "building", "", "Filter by building ID")
	listCmd.Flags().StringVar(&listDate, "date", "", "Filter by day (YYYY-MM-DD)")
}
