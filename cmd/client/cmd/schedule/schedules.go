package schedule

import (
	"github.com/spf13/cobra"
)

// ScheduleCmd is the parent command for all schedule operations
var ScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage maintenance and rental schedules",
	Long:  `Listing, creation, update and removal of schedule entries, plus a yearly calendar view.`,
}
