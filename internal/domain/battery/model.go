package battery

import (
	"fmt"

	"fieldassets/internal/utils/dates"
)

const (
	ColProductName  = "product_name"
	ColLocationName = "location_name"
	ColState        = "state"
	ColDueDate      = "due_date"
	ColFolderName   = "folder_name"
	ColMarks        = "marks"
)

// Battery is one tracked battery pack. DueDate is optional and rendered
// with the due-date highlight rule.
type Battery struct {
	ID           string    `json:"id,omitempty"`
	ProductName  string    `json:"product_name"`
	LocationName string    `json:"location_name"`
	State        bool      `json:"state"`
	DueDate      dates.Day `json:"due_date"`
	FolderName   string    `json:"folder_name,omitempty"`
	Marks        string    `json:"marks,omitempty"`
}

func (b Battery) RecordID() string {
	return b.ID
}

func (b Battery) Field(key string) any {
	switch key {
	case ColProductName:
		return b.ProductName
	case ColLocationName:
		return b.LocationName
	case ColState:
		return b.State
	case ColDueDate:
		return b.DueDate
	case ColFolderName:
		return b.FolderName
	case ColMarks:
		return b.Marks
	}
	return nil
}

func RequiredColumns() []string {
	return []string{ColProductName, ColLocationName}
}

func (b Battery) Validate() error {
	if b.ProductName == "" {
		return fmt.Errorf("%w: product_name is required", ErrInvalidData)
	}
	if b.LocationName == "" {
		return fmt.Errorf("%w: location_name is required", ErrInvalidData)
	}
	return nil
}
