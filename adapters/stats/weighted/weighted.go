// Package weighted provides population statistics over a series with
// per-observation weights. The weights need not sum to one. Callers are
// expected to pass equal-length slices with a positive weight sum.
package weighted

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns Σ(w·x) / Σ(w)
func Mean(x, weights []float64) float64 {
	return stat.Mean(x, weights)
}

// MeanVariance returns the weighted mean and the weighted mean of squared
// deviations from it. A constant series has exactly zero variance and its
// value as mean; rounding noise is never reported as spread.
func MeanVariance(x, weights []float64) (mean, variance float64) {
	if isConstant(x) {
		return x[0], 0
	}
	mean, variance = stat.PopMeanVariance(x, weights)
	if variance < 0 {
		variance = 0
	}
	return mean, variance
}

func isConstant(x []float64) bool {
	if len(x) == 0 {
		return false
	}
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

// MeanStdDev returns the weighted mean and weighted standard deviation
func MeanStdDev(x, weights []float64) (mean, std float64) {
	mean, variance := MeanVariance(x, weights)
	return mean, math.Sqrt(variance)
}

// Covariance returns Σ(w·(x−meanX)·(y−meanY)) / Σ(w).
// gonum's stat.Covariance normalises by Σ(w)−1, which is undefined for
// weights summing to one or less, so the reduction is done here.
func Covariance(x, y, weights []float64, meanX, meanY float64) float64 {
	var sum, sumWeights float64
	for k, w := range weights {
		sum += w * (x[k] - meanX) * (y[k] - meanY)
		sumWeights += w
	}
	return sum / sumWeights
}

// Moments holds everything needed to form a correlation for one pair
type Moments struct {
	MeanX, MeanY         float64
	VarianceX, VarianceY float64
	Covariance           float64
}

// PairMoments computes means, variances and covariance of x and y
func PairMoments(x, y, weights []float64) Moments {
	meanX, varX := MeanVariance(x, weights)
	meanY, varY := MeanVariance(y, weights)
	return Moments{
		MeanX:      meanX,
		MeanY:      meanY,
		VarianceX:  varX,
		VarianceY:  varY,
		Covariance: Covariance(x, y, weights, meanX, meanY),
	}
}

// Correlation returns covariance / sqrt(varX·varY). ok is false when either
// variance is zero or the result is not finite; corr is then 0.
func (m Moments) Correlation() (corr float64, ok bool) {
	if m.VarianceX <= 0 || m.VarianceY <= 0 {
		return 0, false
	}
	corr = m.Covariance / math.Sqrt(m.VarianceX*m.VarianceY)
	if math.IsNaN(corr) || math.IsInf(corr, 0) {
		return 0, false
	}
	return corr, true
}

// Correlation is the weighted Pearson correlation of x and y
func Correlation(x, y, weights []float64) (float64, bool) {
	return PairMoments(x, y, weights).Correlation()
}
