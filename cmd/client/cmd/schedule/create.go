package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
	"fieldassets/internal/domain/schedule"
	"fieldassets/internal/utils/dates"
)

var (
	title      string
	startDate  string
	endDate    string
	entryColor string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a schedule entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		item, err := buildSchedule("")
		if err != nil {
			return err
		}

		if err := app.Schedules.Create(cmd.Context(), item); err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}

		fmt.Printf("Schedule %q created\n", item.Title)
		return nil
	},
}

func buildSchedule(id string) (schedule.Schedule, error) {
	item := schedule.Schedule{
		ID:    id,
		Title: title,
		Color: entryColor,
	}

	if startDate != "" {
		day, err := dates.Parse(startDate)
		if err != nil {
			return schedule.Schedule{}, fmt.Errorf("invalid start date: %w", err)
		}
		item.Start = day
	}

	if endDate != "" {
		day, err := dates.Parse(endDate)
		if err != nil {
			return schedule.Schedule{}, fmt.Errorf("invalid end date: %w", err)
		}
		item.End = day
	}

	return item, nil
}

func scheduleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&title, "title", "", "schedule title")
	cmd.Flags().StringVar(&startDate, "start", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "last day, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&entryColor, "color", "", "display color, e.g. #ff0000")
}

func init() {
	scheduleFlags(CreateCmd)
}
