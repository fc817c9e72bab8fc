package profile

import (
	"gocorr/adapters/stats/weighted"
	"gocorr/domain/core"
	"gocorr/domain/series"

	"github.com/montanaflynn/stats"
)

// Profiler summarises series before and after outlier suppression
type Profiler struct{}

// NewProfiler creates a new profiler
func NewProfiler() *Profiler {
	return &Profiler{}
}

// Profile describes one series. raw provides the weighted moments the filter
// used; cleaned provides the order statistics after zeroing. outliers lists
// the zeroed positions.
func (p *Profiler) Profile(key core.SeriesKey, raw, cleaned, weights []float64, outliers []int) (series.SeriesProfile, error) {
	min, err := stats.Min(cleaned)
	if err != nil {
		return series.SeriesProfile{}, err
	}
	max, err := stats.Max(cleaned)
	if err != nil {
		return series.SeriesProfile{}, err
	}
	median, err := stats.Median(cleaned)
	if err != nil {
		return series.SeriesProfile{}, err
	}

	mean, std := weighted.MeanStdDev(raw, weights)
	return series.SeriesProfile{
		Key:              key,
		WeightedMean:     mean,
		WeightedStdDev:   std,
		OutliersZeroed:   len(outliers),
		OutlierPositions: outliers,
		CleanMin:         min,
		CleanMax:         max,
		CleanMedian:      median,
	}, nil
}
