package schedule

import (
	"fmt"

	"fieldassets/internal/utils/dates"
)

const (
	ColTitle     = "title"
	ColStartDate = "start_date"
	ColEndDate   = "end_date"
	ColColor     = "color"
)

// Schedule is one maintenance or rental window. The interval
// [Start, End] is inclusive on both ends. Interval ordering is not
// enforced at write time; the calendar treats an inverted interval as
// matching no day.
type Schedule struct {
	ID    string    `json:"id,omitempty"`
	Title string    `json:"title"`
	Start dates.Day `json:"start_date"`
	End   dates.Day `json:"end_date"`
	Color string    `json:"color,omitempty"`
}

func (s Schedule) RecordID() string {
	return s.ID
}

func (s Schedule) Field(key string) any {
	switch key {
	case ColTitle:
		return s.Title
	case ColStartDate:
		return s.Start
	case ColEndDate:
		return s.End
	case ColColor:
		return s.Color
	}
	return nil
}

func RequiredColumns() []string {
	return []string{ColTitle}
}

func (s Schedule) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidData)
	}
	return nil
}

// Contains reports whether day falls inside the schedule interval. A
// schedule with a zero start or end never contains any day, and neither
// does one with Start after End.
func (s Schedule) Contains(day dates.Day) bool {
	if s.Start.IsZero() || s.End.IsZero() {
		return false
	}
	return !day.Before(s.Start) && !day.After(s.End)
}
