package auth

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

var statusRemote bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	Long: `Shows the locally stored session and whether it authorizes administrator
operations. With --remote the token is also verified against the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		guard, err := cfg.ClientProvider.Guard()
		if err != nil {
			return fmt.Errorf("failed to open credential store: %w", err)
		}

		verdict := guard.Check()

		pterm.DefaultSection.Println("Authentication Status")
		if verdict.State != sdk.SessionAuthorized {
			pterm.Warning.Printf("Not authorized: %s\n", verdict.Reason)
			pterm.Info.Println("Run 'gestoryctl auth login' to sign in.")
			return nil
		}

		pterm.Info.Println("Logged in as administrator")

		user := verdict.User
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tROLE\tSESSION_TIMEOUT\tCREATED")
		created := "-"
		if !user.CreatedAt.IsZero() {
			created = user.CreatedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", user.Email, user.Role, user.SessionTimeout(), created)
		w.Flush()

		if statusRemote {
			gestoryClient, err := config.SDKClient(cmd.Context())
			if err != nil {
				return err
			}
			remote, err := gestoryClient.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("server rejected the stored token: %w", err)
			}
			pterm.Success.Printf("Token verified with server (account %s)\n", remote.Email)
		}

		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusRemote, "remote", false, "Verify the stored token against the server")
}
