package auth

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
	"github.com/gestory/gestoryctl/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Gestory",
	Long: `Authenticates against the Gestory server with email and password.

Only administrator accounts may use gestoryctl; a successful login with a
non-administrator account is rejected and nothing is stored locally.

Credentials can be passed via --email and --password, or entered at the
interactive prompt. In non-interactive mode both flags are required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email := loginEmail
		password := loginPassword
		if email == "" || password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--email and --password are required in non-interactive mode")
			}
			var err error
			if email == "" {
				email, err = pterm.DefaultInteractiveTextInput.Show("Email")
				if err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}
			if password == "" {
				password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
			}
		}

		gestoryClient, err := config.SDKClient(cmd.Context())
		if err != nil {
			return err
		}

		user, err := gestoryClient.Login(cmd.Context(), email, password)
		if err != nil {
			var denied *sdk.AccessDeniedError
			if errors.As(err, &denied) {
				return fmt.Errorf("access denied: account role %q is not administrator", denied.Role)
			}
			return err
		}

		pterm.Success.Println("Login successful!")
		pterm.Info.Printf("Authenticated as: %s (%s)\n", user.Email, user.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
