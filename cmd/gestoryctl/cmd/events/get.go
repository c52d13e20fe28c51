package events

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
	Use:   "get <event-id>",
	Short: "Show an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		e, err := gestoryClient.GetEvent(cobraCmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get event: %w", err)
		}

		pterm.DefaultSection.Println(e.Title)
		if e.Description != "" {
			fmt.Println(e.Description)
			fmt.Println()
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", e.ID)
		fmt.Fprintf(w, "BUILDING\t%s\n", e.BuildingAssigned)
		if e.Classroom != "" {
			fmt.Fprintf(w, "CLASSROOM\t%s\n", e.Classroom)
		}
		fmt.Fprintf(w, "DATE\t%s\n", e.DateTime.Local().Format(time.RFC1123))
		if e.Organizer != "" {
			fmt.Fprintf(w, "ORGANIZER\t%s\n", e.Organizer)
		}
		if e.Category != "" {
			fmt.Fprintf(w, "CATEGORY\t%s\n", e.Category)
		}
		fmt.Fprintf(w, "STATUS\t%s\n", e.Status)
		w.Flush()
		return nil
	},
}
