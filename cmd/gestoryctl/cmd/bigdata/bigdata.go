package bigdata

import (
	"github.com/spf13/cobra"
)

// BigdataCmd is the parent command for analytics operations
var BigdataCmd = &cobra.Command{
	Use:   "bigdata",
	Short: "Campus analytics",
	Long:  `Commands for the analytics dashboard, usage statistics, and batch processing.`,
}

func init() {
	BigdataCmd.AddCommand(dashboardCmd)
	BigdataCmd.AddCommand(buildingsCmd)
	BigdataCmd.AddCommand(eventsCmd)
	BigdataCmd.AddCommand(batchCmd)
}
