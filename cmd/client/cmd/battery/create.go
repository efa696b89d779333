package battery

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
	"fieldassets/internal/domain/battery"
	"fieldassets/internal/utils/dates"
)

var (
	productName  string
	locationName string
	state        bool
	dueDate      string
	folderName   string
	marks        string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new battery",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		item, err := buildBattery("")
		if err != nil {
			return err
		}

		if err := app.Batteries.Create(cmd.Context(), item); err != nil {
			return fmt.Errorf("failed to create battery: %w", err)
		}

		fmt.Printf("Battery %q created\n", item.ProductName)
		return nil
	},
}

func buildBattery(id string) (battery.Battery, error) {
	item := battery.Battery{
		ID:           id,
		ProductName:  productName,
		LocationName: locationName,
		State:        state,
		FolderName:   folderName,
		Marks:        marks,
	}

	if dueDate != "" {
		day, err := dates.Parse(dueDate)
		if err != nil {
			return battery.Battery{}, fmt.Errorf("invalid due date: %w", err)
		}
		item.DueDate = day
	}

	return item, nil
}

func batteryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&productName, "product", "", "product name")
	cmd.Flags().StringVar(&locationName, "location", "", "location name")
	cmd.Flags().BoolVar(&state, "charged", true, "battery is charged")
	cmd.Flags().StringVar(&dueDate, "due", "", "service due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&folderName, "folder", "", "documentation folder")
	cmd.Flags().StringVar(&marks, "marks", "", "free-form notes")
}

func init() {
	batteryFlags(CreateCmd)
}
