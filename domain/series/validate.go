package series

import (
	"fmt"
	"math"

	"gocorr/domain/core"

	"gonum.org/v1/gonum/floats"
)

// Validate checks the preconditions shared by the filter and the scanner.
// It never modifies its arguments.
func Validate(data [][]float64, weights []float64) error {
	if len(data) < 2 {
		return core.NewInsufficientSeriesError(len(data))
	}

	n := len(data[0])
	if n == 0 {
		return fmt.Errorf("%w: series are empty", core.ErrShapeMismatch)
	}
	for i, row := range data {
		if len(row) != n {
			return core.NewShapeError("series", i, len(row), n)
		}
	}
	if len(weights) != n {
		return fmt.Errorf("%w: weight vector has length %d, series have length %d",
			core.ErrShapeMismatch, len(weights), n)
	}

	for k, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return core.NewInvalidWeightError(k, w)
		}
	}
	if floats.Sum(weights) <= 0 {
		return core.ErrZeroWeightSum
	}

	for i, row := range data {
		for k, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return core.NewNonFiniteValueError(i, k, v)
			}
		}
	}
	return nil
}
