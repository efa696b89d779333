package schedule

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("schedule not found")
	ErrInvalidData = errors.New("invalid schedule data")
)
