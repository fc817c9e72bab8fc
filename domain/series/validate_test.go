package series

import (
	"math"
	"testing"

	"gocorr/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		data    [][]float64
		weights []float64
		want    error
	}{
		{"ok", [][]float64{{1, 2}, {3, 4}}, []float64{1, 1}, nil},
		{"single series", [][]float64{{1, 2}}, []float64{1, 1}, core.ErrInsufficientSeries},
		{"no series", nil, []float64{1}, core.ErrInsufficientSeries},
		{"ragged", [][]float64{{1, 2, 3}, {3, 4}}, []float64{1, 1, 1}, core.ErrShapeMismatch},
		{"weights too short", [][]float64{{1, 2}, {3, 4}}, []float64{1}, core.ErrShapeMismatch},
		{"empty series", [][]float64{{}, {}}, []float64{}, core.ErrShapeMismatch},
		{"zero weights", [][]float64{{1, 2}, {3, 4}}, []float64{0, 0}, core.ErrZeroWeightSum},
		{"negative weight", [][]float64{{1, 2}, {3, 4}}, []float64{2, -1}, core.ErrInvalidWeight},
		{"nan weight", [][]float64{{1, 2}, {3, 4}}, []float64{1, math.NaN()}, core.ErrInvalidWeight},
		{"inf value", [][]float64{{1, math.Inf(1)}, {3, 4}}, []float64{1, 1}, core.ErrNonFiniteValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.data, tc.weights)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_ShapeErrorNamesSeries(t *testing.T) {
	err := Validate([][]float64{{1, 2, 3}, {1, 2, 3}, {1, 2}}, []float64{1, 1, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "series 2 has length 2, expected 3")
}

func TestMatrixClone(t *testing.T) {
	m := Matrix{{1, 2}, {3, 4}}
	c := m.Clone()
	c[0][0] = 99

	assert.Equal(t, 1.0, m[0][0])
	assert.Equal(t, 2, c.SeriesCount())
	assert.Equal(t, 2, c.Length())
	assert.Equal(t, 0, Matrix(nil).Length())
}
