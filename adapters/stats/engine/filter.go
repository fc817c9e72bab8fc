package engine

import (
	"gocorr/adapters/stats/weighted"
	"gocorr/domain/series"
)

// OutlierThreshold is the number of weighted standard deviations from the
// weighted mean beyond which an observation is zeroed.
const OutlierThreshold = 2.0

// Mask flags the outlier positions of a single series
type Mask []bool

// Count returns the number of flagged positions
func (m Mask) Count() int {
	n := 0
	for _, flagged := range m {
		if flagged {
			n++
		}
	}
	return n
}

// Positions returns the flagged indices in ascending order
func (m Mask) Positions() []int {
	var out []int
	for k, flagged := range m {
		if flagged {
			out = append(out, k)
		}
	}
	return out
}

// OutlierMask marks every x_k strictly outside [mean-2σ, mean+2σ].
// A series with σ = 0 has no outliers.
func OutlierMask(x, weights []float64) Mask {
	mask := make(Mask, len(x))
	mean, std := weighted.MeanStdDev(x, weights)
	if std == 0 {
		return mask
	}

	lo := mean - OutlierThreshold*std
	hi := mean + OutlierThreshold*std
	for k, v := range x {
		mask[k] = v < lo || v > hi
	}
	return mask
}

// FilterSeries returns a copy of x with outliers replaced by zero.
func FilterSeries(x, weights []float64) []float64 {
	out, _ := filterSeries(x, weights)
	return out
}

func filterSeries(x, weights []float64) ([]float64, Mask) {
	mask := OutlierMask(x, weights)
	out := make([]float64, len(x))
	for k, v := range x {
		if !mask[k] {
			out[k] = v
		}
	}
	return out, mask
}

// FilterMatrix filters every series independently against the same weights.
// The input matrix is left untouched.
func FilterMatrix(data [][]float64, weights []float64) (series.Matrix, []Mask) {
	cleaned := make(series.Matrix, len(data))
	masks := make([]Mask, len(data))
	for i, row := range data {
		cleaned[i], masks[i] = filterSeries(row, weights)
	}
	return cleaned, masks
}
