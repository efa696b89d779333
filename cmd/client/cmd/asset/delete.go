package asset

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Assets.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete asset: %w", err)
		}

		fmt.Printf("Asset %s deleted\n", args[0])
		return nil
	},
}
