package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	assetCmd "fieldassets/cmd/client/cmd/asset"
	batteryCmd "fieldassets/cmd/client/cmd/battery"
	scheduleCmd "fieldassets/cmd/client/cmd/schedule"
	"fieldassets/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the server connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.HealthCheck(cmd.Context()); err != nil {
			return fmt.Errorf("server is unreachable: %w", err)
		}

		fmt.Println("Server is up")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(assetCmd.AssetCmd)
	assetCmd.AssetCmd.AddCommand(assetCmd.ListCmd)
	assetCmd.AssetCmd.AddCommand(assetCmd.CreateCmd)
	assetCmd.AssetCmd.AddCommand(assetCmd.UpdateCmd)
	assetCmd.AssetCmd.AddCommand(assetCmd.DeleteCmd)

	rootCmd.AddCommand(batteryCmd.BatteryCmd)
	batteryCmd.BatteryCmd.AddCommand(batteryCmd.ListCmd)
	batteryCmd.BatteryCmd.AddCommand(batteryCmd.CreateCmd)
	batteryCmd.BatteryCmd.AddCommand(batteryCmd.UpdateCmd)
	batteryCmd.BatteryCmd.AddCommand(batteryCmd.DeleteCmd)

	rootCmd.AddCommand(scheduleCmd.ScheduleCmd)
	scheduleCmd.ScheduleCmd.AddCommand(scheduleCmd.ListCmd)
	scheduleCmd.ScheduleCmd.AddCommand(scheduleCmd.CreateCmd)
	scheduleCmd.ScheduleCmd.AddCommand(scheduleCmd.UpdateCmd)
	scheduleCmd.ScheduleCmd.AddCommand(scheduleCmd.DeleteCmd)
	scheduleCmd.ScheduleCmd.AddCommand(scheduleCmd.CalendarCmd)
}
