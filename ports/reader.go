package ports

import (
	"context"

	"gocorr/domain/series"
)

// MatrixReaderPort loads a labelled series matrix from a file
type MatrixReaderPort interface {
	ReadMatrix(ctx context.Context, path string) (*series.Input, error)
}
