package events

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List event categories",
	Args:  cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		categories, err := gestoryClient.ListCategories(cobraCmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}

		if len(categories) == 0 {
			fmt.Println("No categories found")
			return nil
		}

		sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, c := range categories {
			fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
		}
		w.Flush()
		return nil
	},
}
