package asset

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
)

var updateID string

var UpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an asset",
	Long: `Replaces an asset with the provided field set. All fields are sent,
not just the changed ones, so pass every value the asset should keep.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		item, err := buildAsset(updateID)
		if err != nil {
			return err
		}

		if err := app.Assets.Update(cmd.Context(), item); err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}

		fmt.Printf("Asset %s updated\n", updateID)
		return nil
	},
}

func init() {
	assetFlags(UpdateCmd)
	UpdateCmd.Flags().StringVar(&updateID, "id", "", "asset identifier")
	_ = UpdateCmd.MarkFlagRequired("id")
}
