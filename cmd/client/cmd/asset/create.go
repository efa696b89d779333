package asset

import (
	"fmt"

	"github.com/spf13/cobra"

	"fieldassets/internal/app/client"
	"fieldassets/internal/domain/asset"
	"fieldassets/internal/utils/dates"
)

var (
	brandName       string
	assetName       string
	locationName    string
	state           bool
	rentState       bool
	marks           string
	calibrationDate string
	nextCalibration string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new asset",
	Long: `Creates an asset on the server. Brand, name and location are required.
The asset table is refetched after the create so the local view matches
the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		item, err := buildAsset("")
		if err != nil {
			return err
		}

		if err := app.Assets.Create(cmd.Context(), item); err != nil {
			return fmt.Errorf("failed to create asset: %w", err)
		}

		fmt.Printf("Asset %q created\n", item.AssetName)
		return nil
	},
}

func buildAsset(id string) (asset.Asset, error) {
	item := asset.Asset{
		ID:           id,
		BrandName:    brandName,
		AssetName:    assetName,
		LocationName: locationName,
		State:        state,
		RentState:    rentState,
		Marks:        marks,
	}

	if calibrationDate != "" {
		day, err := dates.Parse(calibrationDate)
		if err != nil {
			return asset.Asset{}, fmt.Errorf("invalid calibration date: %w", err)
		}
		item.CalibrationDate = day
	}

	if nextCalibration != "" {
		day, err := dates.Parse(nextCalibration)
		if err != nil {
			return asset.Asset{}, fmt.Errorf("invalid next calibration date: %w", err)
		}
		item.NextCalibration = day
	}

	return item, nil
}

func assetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&brandName, "brand", "", "brand name")
	cmd.Flags().StringVar(&assetName, "name", "", "asset name")
	cmd.Flags().StringVar(&locationName, "location", "", "location name")
	cmd.Flags().BoolVar(&state, "in-service", true, "asset is in service")
	cmd.Flags().BoolVar(&rentState, "rented", false, "asset is rented out")
	cmd.Flags().StringVar(&marks, "marks", "", "free-form notes")
	cmd.Flags().StringVar(&calibrationDate, "calibrated", "", "last calibration date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&nextCalibration, "next-calibration", "", "next calibration date (YYYY-MM-DD)")
}

func init() {
	assetFlags(CreateCmd)
}
