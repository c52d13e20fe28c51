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
	createTitle       string
	createDescription string
	createBuilding    string
	createClassroom   string
	createDate        string
	createOrganizer   string
	createCategory    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event",
	Long: `Creates a new event in the scheduled state. The date is given as an RFC 3339
timestamp, e.g. 2026-09-15T10:00:00-06:00.`,
	Args: cobra.NoArgs,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		dateTime, err := time.Parse(time.RFC3339, createDate)
		if err != nil {
			return fmt.Errorf("invalid --date (want RFC 3339): %w", err)
		}

		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		e, err := gestoryClient.CreateEvent(cobraCmd.Context(), sdk.CreateEventInput{
			Title:            createTitle,
			Description:      createDescription,
			BuildingAssigned: createBuilding,
			Classroom:        createClassroom,
			DateTime:         dateTime,
			Organizer:        createOrganizer,
			Category:         createCategory,
			Status:           sdk.EventScheduled,
		})
		if err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		pterm.Success.Printf("Created event %s (%s)\n", e.Title, e.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Event title (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Event description")
	createCmd.Flags().StringVar(&createBuilding, "building", "", "Building ID hosting the event (required)")
	createCmd.Flags().StringVar(&createClassroom, "classroom", "", "Classroom within the building")
	createCmd.Flags().StringVar(&createDate, "date", "", "Event date and time, RFC 3339 (required)")
	createCmd.Flags().StringVar(&createOrganizer, "organizer", "", "Event organizer")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Event category")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("building")
	_ = createCmd.MarkFlagRequired("date")
}
