package battery

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
)

var updateID string

var UpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a battery",
	Long: `Replaces a battery with the provided field set. All fields are sent,
not just the changed ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		item, err := buildBattery(updateID)
		if err != nil {
			return err
		}

		if err := app.Batteries.Update(cmd.Context(), item); err != nil {
			return fmt.Errorf("failed to update battery: %w", err)
		}

		fmt.Printf("Battery %s updated\n", updateID)
		return nil
	},
}

func init() {
	batteryFlags(UpdateCmd)
	UpdateCmd.Flags().StringVar(&updateID, "id", "", "battery identifier")
	_ = UpdateCmd.MarkFlagRequired("id")
}
