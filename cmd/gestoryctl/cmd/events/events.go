package events

import (
	"github.com/spf13/cobra"
)

// EventsCmd is the parent command for event operations
var EventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage campus events",
	Long:  `Commands for listing, creating, updating, and removing campus events.`,
}

func init() {
	EventsCmd.AddCommand(listCmd)
	EventsCmd.AddCommand(getCmd)
	EventsCmd.AddCommand(createCmd)
	EventsCmd.AddCommand(updateCmd)
	EventsCmd.AddCommand(removeCmd)
	EventsCmd.AddCommand(categoriesCmd)
}
