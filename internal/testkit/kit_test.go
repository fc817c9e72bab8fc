package testkit

import (
	"testing"

	"gocorr/adapters/stats/engine"
	"gocorr/domain/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthetic_PlantedPairIsFound(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		cfg := DefaultSyntheticConfig()
		cfg.Seed = seed

		input, err := Synthetic(cfg)
		require.NoError(t, err)

		i, j, err := engine.FindPair(input.Data, input.Weights)
		require.NoError(t, err)
		assert.Equal(t, cfg.Planted, series.Pair{I: i, J: j}, "seed %d", seed)
	}
}

func TestSynthetic_DeterministicPerSeed(t *testing.T) {
	a, err := Synthetic(DefaultSyntheticConfig())
	require.NoError(t, err)
	b, err := Synthetic(DefaultSyntheticConfig())
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data)
	assert.Equal(t, a.Weights, b.Weights)
}

func TestSynthetic_InvalidConfig(t *testing.T) {
	cfg := DefaultSyntheticConfig()
	cfg.Planted = series.Pair{I: 3, J: 3}
	_, err := Synthetic(cfg)
	assert.Error(t, err)

	cfg = DefaultSyntheticConfig()
	cfg.Series = 1
	_, err = Synthetic(cfg)
	assert.Error(t, err)
}

func TestReferenceScenario(t *testing.T) {
	input := ReferenceScenario()
	require.NoError(t, series.Validate(input.Data, input.Weights))
	assert.Len(t, input.Keys, 3)
}
