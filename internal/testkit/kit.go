package testkit

import (
	"fmt"
	"math/rand"

	"gocorr/domain/core"
	"gocorr/domain/series"
)

// ReferenceScenario is the three-series sample with one extreme value in
// series 0 and series 2 and a heavily weighted head.
func ReferenceScenario() *series.Input {
	return &series.Input{
		Keys: []core.SeriesKey{"series_0", "series_1", "series_2"},
		Data: series.Matrix{
			{1, 2, 3, 4, 5, 6, 7, 8, 9, 300},
			{1, 2, 3, 4, 5, 6, 7, 8, 9, 0},
			{-5, -4, 3, 4, 5, 6, 7, 8, 9, -300},
		},
		Weights: series.Weights{100, 100, 100, 100, 1, 1, 1, 1, 1, 1},
		Source:  "reference",
	}
}

// SyntheticConfig describes a generated matrix with one planted pair
type SyntheticConfig struct {
	Series  int
	Length  int
	Planted series.Pair
	Noise   float64 // amplitude of the noise added to the planted follower
	Seed    int64
}

// DefaultSyntheticConfig returns a small matrix with (1, 4) planted
func DefaultSyntheticConfig() SyntheticConfig {
	return SyntheticConfig{
		Series:  6,
		Length:  200,
		Planted: series.Pair{I: 1, J: 4},
		Noise:   0.1,
		Seed:    42,
	}
}

// Synthetic generates bounded uniform series on [-1, 1], which the filter
// rarely touches. Series Planted.J follows Planted.I plus bounded noise; all
// other series are independent.
func Synthetic(cfg SyntheticConfig) (*series.Input, error) {
	if cfg.Series < 2 || cfg.Length < 1 {
		return nil, fmt.Errorf("synthetic matrix needs at least 2 series and 1 observation")
	}
	if cfg.Planted.I < 0 || cfg.Planted.I >= cfg.Planted.J || cfg.Planted.J >= cfg.Series {
		return nil, fmt.Errorf("planted pair (%d, %d) out of range", cfg.Planted.I, cfg.Planted.J)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	uniform := func() float64 { return rng.Float64()*2 - 1 }

	input := &series.Input{
		Data:    make(series.Matrix, cfg.Series),
		Weights: make(series.Weights, cfg.Length),
		Source:  fmt.Sprintf("synthetic(seed=%d)", cfg.Seed),
	}
	for k := range input.Weights {
		input.Weights[k] = 0.5 + rng.Float64()
	}
	for i := range input.Data {
		input.Keys = append(input.Keys, core.DefaultSeriesKey(i))
		input.Data[i] = make([]float64, cfg.Length)
		if i == cfg.Planted.J {
			continue
		}
		for k := range input.Data[i] {
			input.Data[i][k] = uniform()
		}
	}

	leader, follower := input.Data[cfg.Planted.I], input.Data[cfg.Planted.J]
	for k := range follower {
		follower[k] = (leader[k] + cfg.Noise*uniform()) / (1 + cfg.Noise)
	}

	return input, nil
}
