package buildings

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var getCmd = &cobra.Command{
	Use:   "get <building-id>",
	Short: "Show a building",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		b, err := gestoryClient.GetBuilding(cobraCmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get building: %w", err)
		}

		pterm.DefaultSection.Println(b.Name)
		if b.Description != "" {
			fmt.Println(b.Description)
			fmt.Println()
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", b.ID)
		fmt.Fprintf(w, "FLOORS\t%d\n", b.Floors)
		fmt.Fprintf(w, "ACCESSIBLE\t%t\n", b.Accessibility)
		fmt.Fprintf(w, "AVAILABLE\t%t\n", b.Availability)
		fmt.Fprintf(w, "HIGH_TRAFFIC\t%t\n", b.StudentFrequency)
		if b.Media != "" {
			fmt.Fprintf(w, "MEDIA\t%s\n", b.Media)
		}
		if b.LastUpdated != nil {
			fmt.Fprintf(w, "LAST_UPDATED\t%s\n", b.LastUpdated.UTC().Format(time.RFC3339))
		}
		w.Flush()

		if len(b.Services) > 0 {
			pterm.DefaultSection.Println("Services")
			for _, s := range b.Services {
				fmt.Printf("  - %s\n", s.Name)
			}
		}
		if len(b.Careers) > 0 {
			pterm.DefaultSection.Println("Careers")
			for _, c := range b.Careers {
				fmt.Printf("  - %s\n", c.Name)
			}
		}
		if len(b.Subjects) > 0 {
			pterm.DefaultSection.Println("Subjects")
			for _, s := range b.Subjects {
				if s.Floor > 0 {
					fmt.Printf("  - %s (floor %d)\n", s.Name, s.Floor)
				} else {
					fmt.Printf("  - %s\n", s.Name)
				}
			}
		}

		return nil
	},
}
