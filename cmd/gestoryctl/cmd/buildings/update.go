package buildings

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

var (
	updateName          string
	updateDescription   string
	updateAccessibility bool
	updateFloors        int
	updateAvailability  bool
)

var updateCmd = &cobra.Command{
	Use:   "update <building-id>",
	Short: "Update a building",
	Long: `Updates a building. Only the fields whose flags are set are sent; the rest
keep their current values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		input := sdk.UpdateBuildingInput{
			Name:        updateName,
			Description: updateDescription,
		}
		if cobraCmd.Flags().Changed("accessible") {
			input.Accessibility = &updateAccessibility
		}
		if cobraCmd.Flags().Changed("floors") {
			input.Floors = &updateFloors
		}
		if cobraCmd.Flags().Changed("available") {
			input.Availability = &updateAvailability
		}

		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		b, err := gestoryClient.UpdateBuilding(cobraCmd.Context(), args[0], input)
		if err != nil {
			return fmt.Errorf("failed to update building: %w", err)
		}

		pterm.Success.Printf("Updated building %s (%s)\n", b.Name, b.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Building name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Building description")
	updateCmd.Flags().BoolVar(&updateAccessibility, "accessible", false, "Whether the building is wheelchair accessible")
	updateCmd.Flags().IntVar(&updateFloors, "floors", 0, "Number of floors")
	updateCmd.Flags().BoolVar(&updateAvailability, "available", false, "Whether the building is open for events")
}
