package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroid(t *testing.T) {
	t.Run("Identical", func(t *testing.T) {
		x := []float32{1, 1}
		samples := make([][]float32, 10)
		for i := range samples {
			samples[i] = x
		}
		c, ok := Centroid(samples)
		assert.True(t, ok)
		assert.Equal(t, x, c)
	})

	t.Run("IdenticalFractional", func(t *testing.T) {
		x := []float32{0.1, -0.3, 7.77}
		c, ok := Centroid([][]float32{x, x, x})
		assert.True(t, ok)
		assert.Equal(t, x, c)
	})

	t.Run("Complex", func(t *testing.T) {
		c, ok := Centroid([][]float32{{1, 0}, {0, 1}})
		assert.True(t, ok)
		assert.Equal(t, []float32{0.5, 0.5}, c)
	})

	t.Run("Empty", func(t *testing.T) {
		c, ok := Centroid(nil)
		assert.False(t, ok)
		assert.Nil(t, c)
	})

	t.Run("DoesNotAlias", func(t *testing.T) {
		x := []float32{2, 4}
		c, _ := Centroid([][]float32{x})
		c[0] = 100
		assert.Equal(t, float32(2), x[0])
	})
}

func TestMeanInto(t *testing.T) {
	dst := []float32{9, 9}
	assert.False(t, MeanInto(dst, nil))
	assert.Equal(t, []float32{9, 9}, dst)

	assert.True(t, MeanInto(dst, [][]float32{{1, 2}, {3, 4}, {5, 6}}))
	assert.Equal(t, []float32{3, 4}, dst)
}
