package engine

import (
	"context"

	"gocorr/domain/series"
	"gocorr/internal"
)

// StatsEngine runs outlier suppression followed by the pairwise scan
type StatsEngine struct {
	logger *internal.Logger
}

// Analysis is everything the engine produced for one input
type Analysis struct {
	Cleaned series.Matrix
	Masks   []Mask
	Result  series.ScanResult
}

// NewStatsEngine creates a new statistical engine
func NewStatsEngine(logger *internal.Logger) *StatsEngine {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &StatsEngine{logger: logger}
}

// Analyze validates the input, filters each series and scans all pairs.
func (e *StatsEngine) Analyze(ctx context.Context, data [][]float64, weights []float64) (*Analysis, error) {
	if err := series.Validate(data, weights); err != nil {
		return nil, err
	}

	cleaned, masks := FilterMatrix(data, weights)
	for i, mask := range masks {
		if n := mask.Count(); n > 0 {
			e.logger.Debug("series %d: zeroed %d outlier(s) at %v", i, n, mask.Positions())
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := Scan(ctx, cleaned, weights, func(pair series.Pair, corr float64, defined bool) {
		if !defined {
			e.logger.Trace("pair (%d, %d): zero variance, scored 0", pair.I, pair.J)
			return
		}
		e.logger.Trace("pair (%d, %d): r=%.6f", pair.I, pair.J, corr)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Debug("best pair (%d, %d) |r|=%.6f over %d pairs",
		result.Pair.I, result.Pair.J, result.Magnitude, result.PairsScanned)

	return &Analysis{Cleaned: cleaned, Masks: masks, Result: result}, nil
}

// FindPair returns the indices (i, j), i < j, of the two series with the
// largest absolute weighted correlation after outlier suppression.
func (e *StatsEngine) FindPair(ctx context.Context, data [][]float64, weights []float64) (int, int, error) {
	analysis, err := e.Analyze(ctx, data, weights)
	if err != nil {
		return 0, 0, err
	}
	return analysis.Result.Pair.I, analysis.Result.Pair.J, nil
}

// FindPair runs the default engine without cancellation.
func FindPair(data [][]float64, weights []float64) (int, int, error) {
	return NewStatsEngine(nil).FindPair(context.Background(), data, weights)
}
