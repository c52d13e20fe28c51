package events

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <event-id>",
	Short: "Remove an event",
	Long:  `Removes an event permanently. Asks for confirmation unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cobraCmd.Context())

		if !removeYes {
			if cfg.NonInteractive {
				return fmt.Errorf("refusing to remove without --yes in non-interactive mode")
			}
			ok, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Remove event %s?", args[0]))
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !ok {
				fmt.Println("Aborted")
				return nil
			}
		}

		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		if err := gestoryClient.DeleteEvent(cobraCmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to remove event: %w", err)
		}

		fmt.Printf("Event removed (ID: %s)\n", args[0])
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeYes, "yes", false, "Skip the confirmation prompt")
}
