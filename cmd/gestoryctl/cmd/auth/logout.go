package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from Gestory",
	Long: `Clears the stored session. The server is told to revoke the token, but the
local session is removed even when that call fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gestoryClient, err := config.SDKClient(cmd.Context())
		if err != nil {
			return err
		}

		if err := gestoryClient.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		fmt.Println("Logged out successfully")
		return nil
	},
}
