package dataset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sample := Generate(rng, 1000, 1000)

	require.Len(t, sample, 1000)
	for _, v := range sample {
		assert.GreaterOrEqual(t, v, int32(0))
		assert.Less(t, v, int32(1000))
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	first := Generate(rand.New(rand.NewSource(7)), 100, 1000)
	second := Generate(rand.New(rand.NewSource(7)), 100, 1000)
	assert.Equal(t, first, second)

	other := Generate(rand.New(rand.NewSource(8)), 100, 1000)
	assert.NotEqual(t, first, other)
}

func TestGenerateZeroCount(t *testing.T) {
	sample := Generate(rand.New(rand.NewSource(1)), 0, 1000)
	assert.Empty(t, sample)
}
