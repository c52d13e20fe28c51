package events

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

var (
	updateTitle       string
	updateDescription string
	updateBuilding    string
	updateClassroom   string
	updateDate        string
	updateOrganizer   string
	updateCategory    string
	updateStatus      string
)

var updateCmd = &cobra.Command{
	Use:   "update <event-id>",
	Short: "Update an event",
	Long: `Updates an event. Only the fields whose flags are set are sent; the rest
keep their current values. Valid statuses: programado, en_curso, finalizado,
cancelado.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		input := sdk.UpdateEventInput{
			Title:            updateTitle,
			Description:      updateDescription,
			BuildingAssigned: updateBuilding,
			Classroom:        updateClassroom,
			Organizer:        updateOrganizer,
			Category:         updateCategory,
			Status:           sdk.EventStatus(updateStatus),
		}
		if cobraCmd.Flags().Changed("date") {
			dateTime, err := time.Parse(time.RFC3339, updateDate)
			if err != nil {
				return fmt.Errorf("invalid --date (want RFC 3339): %w", err)
			}
			input.DateTime = &dateTime
		}

		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		e, err := gestoryClient.UpdateEvent(cobraCmd.Context(), args[0], input)
		if err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}

		pterm.Success.Printf("Updated event %s (%s)\n", e.Title, e.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "Event title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Event description")
	updateCmd.Flags().StringVar(&updateBuilding, "building", "", "Building ID hosting the event")
	updateCmd.Flags().StringVar(&updateClassroom, "classroom", "", "Classroom within the building")
	updateCmd.Flags().StringVar(&updateDate, "date", "", "Event date and time, RFC 3339")
	updateCmd.Flags().StringVar(&updateOrganizer, "organizer", "", "Event organizer")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "Event category")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "Event status")
}
