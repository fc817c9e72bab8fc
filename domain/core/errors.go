package core

import (
	"errors"
	"fmt"
)

// Input errors raised before any computation starts
var (
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrInsufficientSeries = errors.New("at least two series are required")
	ErrZeroWeightSum      = errors.New("weights sum to zero")
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrNonFiniteValue     = errors.New("non-finite value")
)

// NewShapeError reports a series whose length differs from the expected length.
func NewShapeError(what string, index, got, want int) error {
	return fmt.Errorf("%w: %s %d has length %d, expected %d", ErrShapeMismatch, what, index, got, want)
}

func NewInsufficientSeriesError(count int) error {
	return fmt.Errorf("%w: got %d", ErrInsufficientSeries, count)
}

func NewInvalidWeightError(index int, value float64) error {
	return fmt.Errorf("%w at position %d: %v", ErrInvalidWeight, index, value)
}

func NewNonFiniteValueError(series, position int, value float64) error {
	return fmt.Errorf("%w in series %d at position %d: %v", ErrNonFiniteValue, series, position, value)
}

// IsShapeError covers every malformed-input condition that is not weight related
func IsShapeError(err error) bool {
	return errors.Is(err, ErrShapeMismatch) || errors.Is(err, ErrNonFiniteValue)
}

func IsWeightError(err error) bool {
	return errors.Is(err, ErrZeroWeightSum) || errors.Is(err, ErrInvalidWeight)
}

// IsInputError reports whether err was caused by the caller's data
func IsInputError(err error) bool {
	return IsShapeError(err) || IsWeightError(err) || errors.Is(err, ErrInsufficientSeries)
}
