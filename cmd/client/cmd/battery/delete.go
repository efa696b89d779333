package battery

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a battery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Batteries.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete battery: %w", err)
		}

		fmt.Printf("Battery %s deleted\n", args[0])
		return nil
	},
}
