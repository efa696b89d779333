package dates

import (
	"bytes"
	"fmt"
	"time"
)

// Format is the wire format for all date fields, day granularity.
const Format = "2006-01-02"

// Day is a calendar date without time-of-day or location. The zero value
// means "no date". Day is comparable and safe to use as a map key.
type Day struct {
	year  int
	month time.Month
	day   int
}

// Parse parses a YYYY-MM-DD string into a Day.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Format, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParse is Parse for test fixtures and constants; panics on error.
func MustParse(s string) Day {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime truncates a time.Time to its calendar date in the time's
// location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns the day at midnight UTC.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Day) Before(o Day) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

func (d Day) After(o Day) bool {
	return o.Before(d)
}

// AddDays returns the day n days later (or earlier for negative n),
// normalized across month and year boundaries.
func (d Day) AddDays(n int) Day {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Day) Year() int {
	return d.year
}

func (d Day) Month() time.Month {
	return d.month
}

func (d Day) DayOfMonth() int {
	return d.day
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(Format)
}

var jsonNull = []byte("null")

// MarshalJSON encodes the day as "YYYY-MM-DD", or null for the zero Day.
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD", "" and null; the latter two decode
// to the zero Day.
func (d *Day) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*d = Day{}
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" {
		*d = Day{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DueSoon reports whether d falls within the next seven days of now,
// inclusive of today and of the seventh day. At day granularity this is
// the original highlight window [today 00:00, today+7 23:59:59]. A zero
// day is never due.
func DueSoon(d Day, now time.Time) bool {
	if d.IsZero() {
		return false
	}
	today := FromTime(now)
	limit := today.AddDays(7)
	return !d.Before(today) && !d.After(limit)
}
