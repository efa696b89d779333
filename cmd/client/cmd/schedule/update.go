package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
)

var updateID string

var UpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a schedule entry",
	Long: `Replaces a schedule entry with the provided field set. All fields are
sent, not just the changed ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		item, err := buildSchedule(updateID)
		if err != nil {
			return err
		}

		if err := app.Schedules.Update(cmd.Context(), item); err != nil {
			return fmt.Errorf("failed to update schedule: %w", err)
		}

		fmt.Printf("Schedule %s updated\n", updateID)
		return nil
	},
}

func init() {
	scheduleFlags(UpdateCmd)
	UpdateCmd.Flags().StringVar(&updateID, "id", "", "schedule identifier")
	_ = UpdateCmd.MarkFlagRequired("id")
}
