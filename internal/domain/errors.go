package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is matched by every error produced while parsing a
// dimension value from outside input.
var ErrInvalidDimension = errors.New("invalid dimension")

type DimensionError struct {
	Dimension string
	Value     string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrInvalidDimension, e.Dimension, e.Value)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}
