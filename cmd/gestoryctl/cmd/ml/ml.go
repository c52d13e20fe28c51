package ml

import (
	"github.com/spf13/cobra"
)

// MLCmd is the parent command for prediction operations
var MLCmd = &cobra.Command{
	Use:   "ml",
	Short: "Attendance and mobility predictions",
	Long:  `Commands for querying the machine learning prediction service.`,
}

func init() {
	MLCmd.AddCommand(attendanceCmd)
	MLCmd.AddCommand(batchCmd)
	MLCmd.AddCommand(mobilityCmd)
	MLCmd.AddCommand(saturationCmd)
	MLCmd.AddCommand(statusCmd)
}
