package kmeans

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDistinct(t *testing.T) {
	tests := []struct {
		n, k int
	}{
		{1, 1},
		{10, 0},
		{10, 3},
		{10, 10},
		{1_000_000, 5},
	}

	for _, tt := range tests {
		rng := rand.New(rand.NewSource(int64(tt.n + tt.k)))
		got := SampleDistinct(rng, tt.n, tt.k)
		require.Len(t, got, tt.k)

		seen := make(map[int]bool, tt.k)
		for _, idx := range got {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, tt.n)
			assert.False(t, seen[idx], "duplicate index %d", idx)
			seen[idx] = true
		}
	}
}

func TestSampleDistinct_Deterministic(t *testing.T) {
	a := SampleDistinct(rand.New(rand.NewSource(7)), 100, 10)
	b := SampleDistinct(rand.New(rand.NewSource(7)), 100, 10)
	assert.Equal(t, a, b)
}

func TestSampleDistinct_Uniform(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n, trials = 5, 20000

	counts := make([]int, n)
	for range trials {
		for _, idx := range SampleDistinct(rng, n, 2) {
			counts[idx]++
		}
	}

	// Each index is picked with probability 2/5.
	want := float64(trials) * 2 / n
	for i, c := range counts {
		assert.InDelta(t, want, float64(c), want*0.05, "index %d", i)
	}
}

func TestSampleDistinct_Panics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { SampleDistinct(rng, 3, 4) })
	assert.Panics(t, func() { SampleDistinct(rng, 3, -1) })
}
