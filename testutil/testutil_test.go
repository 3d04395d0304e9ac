package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Intn(1000)
	rng.Reset()
	assert.Equal(t, a, rng.Intn(1000))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestUniform(t *testing.T) {
	ds := Uniform(NewRNG(1), 8, 32)
	assert.Equal(t, 8, ds.Len())
	assert.Equal(t, 32, ds.Dim())
	for _, v := range ds.Raw() {
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.Less(t, v, float32(1))
	}
}

func TestLabeledBlobs(t *testing.T) {
	ds, labels := LabeledBlobs(NewRNG(2), 3, 10, 4, 0.1)
	require.Equal(t, 30, ds.Len())
	require.Len(t, labels, 30)

	for i, l := range labels {
		assert.Equal(t, i%3, l)
	}

	// Samples of one blob stay close to each other.
	a, b := ds.At(0), ds.At(3)
	for j := range a {
		assert.InDelta(t, a[j], b[j], 2)
	}
}

func TestBlobsDeterministic(t *testing.T) {
	a := Blobs(NewRNG(5), 2, 5, 3, 1)
	b := Blobs(NewRNG(5), 2, 5, 3, 1)
	assert.Equal(t, a.Raw(), b.Raw())
}
