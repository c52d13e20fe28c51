package buildings

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List campus buildings",
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		buildings, err := gestoryClient.ListBuildings(cobraCmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list buildings: %w", err)
		}

		if len(buildings) == 0 {
			fmt.Println("No buildings found")
			return nil
		}

		sort.Slice(buildings, func(i, j int) bool { return buildings[i].Name < buildings[j].Name })

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tFLOORS\tACCESSIBLE\tAVAILABLE\tSERVICES")
		for _, b := range buildings {
			fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%t\t%d\n",
				b.ID,
				b.Name,
				b.Floors,
				b.Accessibility,
				b.Availability,
				len(b.Services),
			)
		}
		w.Flush()
		return nil
	},
}
