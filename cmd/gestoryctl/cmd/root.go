package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/cmd/auth"
	"github.com/gestory/gestoryctl/cmd/gestoryctl/cmd/bigdata"
	"github.com/gestory/gestoryctl/cmd/gestoryctl/cmd/buildings"
	"github.com/gestory/gestoryctl/cmd/gestoryctl/cmd/events"
	"github.com/gestory/gestoryctl/cmd/gestoryctl/cmd/ml"
	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/client"
	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var (
	serverURL      string
	configFile     string
	nonInteractive bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "gestoryctl",
	Short: "Gestory CLI - campus administration client",
	Long: `gestoryctl is the command-line interface for Gestory, a campus building and
event administration system. Use it to manage buildings and events, inspect
analytics, and query the attendance prediction service.

Most commands require an administrator session; run 'gestoryctl auth login'
first, or set GESTORY_TOKEN for scripted use.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		cfg, err := config.Load(configFile, serverURL)
		if err != nil {
			return err
		}

		// Check for GESTORY_NON_INTERACTIVE environment variable
		if nonInteractive || os.Getenv("GESTORY_NON_INTERACTIVE") == "1" {
			cfg.NonInteractive = true
		}

		provider := client.NewProvider(cfg.APIURL)
		if token := os.Getenv("GESTORY_TOKEN"); token != "" {
			provider.SetBearerToken(token)
		}
		cfg.ClientProvider = provider

		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Gestory API base URL (default http://localhost:5000/api)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default gestory.yaml in . or ~/.gestory)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via GESTORY_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(buildings.BuildingsCmd)
	rootCmd.AddCommand(events.EventsCmd)
	rootCmd.AddCommand(bigdata.BigdataCmd)
	rootCmd.AddCommand(ml.MLCmd)
}
