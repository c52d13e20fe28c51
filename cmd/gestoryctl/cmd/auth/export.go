package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var shellFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session token as an environment variable",
	Long: `Export the stored session token as the GESTORY_TOKEN environment variable,
so other tools and scripts can call the Gestory API with the same session.

Supported shells:
  - posix (bash, zsh, sh) - default
  - fish
  - powershell

Usage:
  # POSIX shells (bash/zsh/sh)
  eval $(gestoryctl auth export)

  # Fish shell
  eval (gestoryctl auth export --shell fish)

  # PowerShell
  gestoryctl auth export --shell powershell | Invoke-Expression

The token is loaded from your stored login session. If not logged in you
will be prompted to run 'gestoryctl auth login'.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&shellFormat, "shell", "", "Shell format: posix, fish, powershell (auto-detected if not specified)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.MustFromContext(cmd.Context())

	store, err := cfg.ClientProvider.Store()
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}

	token, ok := store.Token()
	if !ok {
		return fmt.Errorf("no stored session\n\nPlease run 'gestoryctl auth login' first")
	}

	// Auto-detect shell if not specified
	if shellFormat == "" {
		shellFormat = detectShell()
	}
	shellFormat = strings.ToLower(shellFormat)

	switch shellFormat {
	case "posix", "bash", "zsh", "sh":
		printPosixExport(token)
	case "fish":
		printFishExport(token)
	case "powershell", "pwsh", "ps1":
		printPowerShellExport(token)
	default:
		return fmt.Errorf("unsupported shell format: %s\n\nSupported formats: posix, fish, powershell", shellFormat)
	}

	return nil
}

// detectShell attempts to detect the current shell from the SHELL environment variable
func detectShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "posix"
	}

	switch filepath.Base(shell) {
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	default:
		// Default to POSIX for bash, zsh, sh, and unknown shells
		return "posix"
	}
}

// printPosixExport outputs export commands for POSIX-compatible shells (bash, zsh, sh)
func printPosixExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to export your Gestory session:")
		fmt.Fprintln(os.Stderr, "#   eval $(gestoryctl auth export)")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("export GESTORY_TOKEN=\"%s\"\n", token)
}

// printFishExport outputs set commands for Fish shell
func printFishExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to export your Gestory session:")
		fmt.Fprintln(os.Stderr, "#   eval (gestoryctl auth export --shell fish)")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("set -x GESTORY_TOKEN \"%s\"\n", token)
}

// printPowerShellExport outputs environment variable commands for PowerShell
func printPowerShellExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to export your Gestory session:")
		fmt.Fprintln(os.Stderr, "#   gestoryctl auth export --shell powershell | Invoke-Expression")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("$env:GESTORY_TOKEN=\"%s\"\n", token)
}

// isTerminal checks if the given file is a terminal (TTY)
func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
