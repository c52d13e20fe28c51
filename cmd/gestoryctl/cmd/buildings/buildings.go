package buildings

import (
	"github.com/spf13/cobra"
)

// BuildingsCmd is the parent command for building operations
var BuildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "Manage campus buildings",
	Long:  `Commands for listing, inspecting, and updating campus buildings.`,
}

func init() {
	BuildingsCmd.AddCommand(listCmd)
	BuildingsCmd.AddCommand(getCmd)
	BuildingsCmd.AddCommand(updateCmd)
	BuildingsCmd.AddCommand(uploadCmd)
}
