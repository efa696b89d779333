package battery

import (
	"github.com/spf13/cobra"
)

// BatteryCmd is the parent command for all battery operations
var BatteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Manage battery packs",
	Long:  `Listing, creation, update and removal of tracked battery packs.`,
}
