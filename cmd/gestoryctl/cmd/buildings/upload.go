package buildings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gestory/gestoryctl/cmd/gestoryctl/internal/config"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <building-id> <image-file>",
	Short: "Upload a building image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		file, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open image file: %w", err)
		}
		defer file.Close()

		gestoryClient, err := config.AdminClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		media, err := gestoryClient.UploadBuildingMedia(cobraCmd.Context(), args[0], filepath.Base(args[1]), file)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}

		pterm.Success.Printf("Image uploaded: %s\n", media)
		return nil
	},
}
