package engine

import (
	"context"
	"math"

	"gocorr/adapters/stats/weighted"
	"gocorr/domain/series"
)

// PairVisitor observes every scored pair in scan order
type PairVisitor func(pair series.Pair, correlation float64, defined bool)

// Scan visits each unordered pair (i < j) of the cleaned matrix once, i
// ascending then j ascending, and keeps the pair with the largest absolute
// weighted correlation. A candidate replaces the running best only when its
// magnitude is strictly greater, so ties keep the earlier pair and the
// default (0, 1) survives when no magnitude exceeds zero. Pairs involving a
// zero-variance series score 0.
func Scan(ctx context.Context, data series.Matrix, weights []float64, visit PairVisitor) (series.ScanResult, error) {
	result := series.ScanResult{Pair: series.DefaultPair}

	for i := 0; i < len(data); i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		for j := i + 1; j < len(data); j++ {
			corr, defined := weighted.Correlation(data[i], data[j], weights)
			pair := series.Pair{I: i, J: j}
			if visit != nil {
				visit(pair, corr, defined)
			}
			result.PairsScanned++

			if magnitude := math.Abs(corr); magnitude > result.Magnitude {
				result.Magnitude = magnitude
				result.Correlation = corr
				result.Pair = pair
			}
		}
	}

	return result, nil
}
