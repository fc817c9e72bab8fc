package ports

import (
	"context"

	"gocorr/domain/series"
)

// PairFinderPort finds the most strongly correlated pair of series
type PairFinderPort interface {
	// Find cleans the input and returns a report on the best pair
	Find(ctx context.Context, input *series.Input) (*series.Report, error)
}
