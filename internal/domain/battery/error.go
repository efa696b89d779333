package battery

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("battery not found")
	ErrInvalidData = errors.New("invalid battery data")
)
