package asset

import (
	"fmt"

	"fieldassets/internal/utils/dates"
)

// Column keys, shared by table filters and the wire format.
const (
	ColBrandName       = "brand_name"
	ColAssetName       = "asset_name"
	ColState           = "state"
	ColLocationName    = "location_name"
	ColCalibration     = "calibration_date"
	ColNextCalibration = "next_calibration_date"
	ColRentState       = "rent_state"
	ColMarks           = "marks"
)

// Asset is one tracked field device. The ID is assigned by the server on
// create and immutable afterwards. Both calibration dates are optional
// and rendered with the due-date highlight rule.
type Asset struct {
	ID              string    `json:"id,omitempty"`
	BrandName       string    `json:"brand_name"`
	AssetName       string    `json:"asset_name"`
	State           bool      `json:"state"`
	LocationName    string    `json:"location_name"`
	CalibrationDate dates.Day `json:"calibration_date"`
	NextCalibration dates.Day `json:"next_calibration_date"`
	RentState       bool      `json:"rent_state"`
	Marks           string    `json:"marks,omitempty"`
}

// RecordID implements listsync.Record.
func (a Asset) RecordID() string {
	return a.ID
}

// Field implements listsync.Record. Unknown columns resolve to nil.
func (a Asset) Field(key string) any {
	switch key {
	case ColBrandName:
		return a.BrandName
	case ColAssetName:
		return a.AssetName
	case ColState:
		return a.State
	case ColLocationName:
		return a.LocationName
	case ColCalibration:
		return a.CalibrationDate
	case ColNextCalibration:
		return a.NextCalibration
	case ColRentState:
		return a.RentState
	case ColMarks:
		return a.Marks
	}
	return nil
}

// RequiredColumns are the fields that must be present before an asset is
// sent to the server.
func RequiredColumns() []string {
	return []string{ColBrandName, ColAssetName, ColLocationName}
}

// Validate checks the required fields.
func (a Asset) Validate() error {
	if a.BrandName == "" {
		return fmt.Errorf("%w: brand_name is required", ErrInvalidData)
	}
	if a.AssetName == "" {
		return fmt.Errorf("%w: asset_name is required", ErrInvalidData)
	}
	if a.LocationName == "" {
		return fmt.Errorf("%w: location_name is required", ErrInvalidData)
	}
	return nil
}
