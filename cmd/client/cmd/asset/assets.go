package asset

import (
	"github.com/spf13/cobra"
)

// AssetCmd is the parent command for all asset operations
var AssetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage tracked assets",
	Long:  `Listing, creation, update and removal of tracked field equipment.`,
}
