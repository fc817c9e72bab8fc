package app

import (
	"context"
	"time"

	"gocorr/adapters/stats/engine"
	"gocorr/adapters/stats/profile"
	"gocorr/domain/core"
	"gocorr/domain/series"
	"gocorr/internal"
	"gocorr/internal/errors"
	"gocorr/ports"
)

// PairService finds the most correlated pair and reports on how it got there
type PairService struct {
	engine   *engine.StatsEngine
	profiler *profile.Profiler
	reader   ports.MatrixReaderPort
	logger   *internal.Logger
}

var _ ports.PairFinderPort = (*PairService)(nil)

// NewPairService creates a pair service. reader may be nil when only
// in-memory input is used.
func NewPairService(reader ports.MatrixReaderPort, logger *internal.Logger) *PairService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &PairService{
		engine:   engine.NewStatsEngine(logger.With("engine")),
		profiler: profile.NewProfiler(),
		reader:   reader,
		logger:   logger.With("pair-service"),
	}
}

// Find validates and analyzes input. Input errors come back as *errors.AppError
// carrying SHAPE_ERROR, DEGENERATE_INPUT, ZERO_WEIGHT_SUM or INVALID_INPUT.
func (s *PairService) Find(ctx context.Context, input *series.Input) (*series.Report, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if len(input.Keys) > 0 && len(input.Keys) != len(input.Data) {
		return nil, errors.ShapeError("keys must name every series")
	}

	startTime := time.Now()
	analysis, err := s.engine.Analyze(ctx, input.Data, input.Weights)
	if err != nil {
		s.logger.Warn("analysis rejected: %v", err)
		return nil, errors.FromDomain(err)
	}

	report := &series.Report{
		ID:          core.ReportID(core.NewID()),
		CreatedAt:   core.Now(),
		InputHash:   core.ComputeInputHash(input.Data, input.Weights),
		Pair:        analysis.Result.Pair,
		Keys:        [2]core.SeriesKey{input.KeyFor(analysis.Result.Pair.I), input.KeyFor(analysis.Result.Pair.J)},
		Magnitude:   analysis.Result.Magnitude,
		Correlation: analysis.Result.Correlation,
		SeriesCount: input.Data.SeriesCount(),
		Length:      input.Data.Length(),
		Series:      make([]series.SeriesProfile, 0, len(input.Data)),
	}

	for i, raw := range input.Data {
		p, err := s.profiler.Profile(input.KeyFor(i), raw, analysis.Cleaned[i], input.Weights, analysis.Masks[i].Positions())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to profile series %s", input.KeyFor(i))
		}
		report.Series = append(report.Series, p)
	}

	report.RuntimeMs = time.Since(startTime).Milliseconds()
	s.logger.Info("best pair %s/%s (%d, %d) r=%.4f across %d series",
		report.Keys[0], report.Keys[1], report.Pair.I, report.Pair.J, report.Correlation, report.SeriesCount)

	return report, nil
}

// FindFromFile reads a matrix through the configured reader and analyzes it
func (s *PairService) FindFromFile(ctx context.Context, path string) (*series.Report, error) {
	if s.reader == nil {
		return nil, errors.ConfigInvalid("no matrix reader configured")
	}
	input, err := s.reader.ReadMatrix(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(errors.FromDomain(err), "failed to read %s", path)
	}
	return s.Find(ctx, input)
}
