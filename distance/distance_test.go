package distance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 27},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"Mixed", []float32{1, -1}, []float32{-1, 1}, 8}, // (1 - -1)^2 + (-1 - 1)^2 = 4 + 4 = 8
		{"Empty", []float32{}, []float32{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"UnitX", []float32{1, 0}, []float32{0, 0}, 1},
		{"NegUnitX", []float32{-1, 0}, []float32{0, 0}, 1},
		{"Pythagoras", []float32{3, 4}, []float32{0, 0}, 5},
		{
			"Reference",
			[]float32{0.12967037, 0.11381539, 0.48476367, -0.51196512, 0.11607633},
			[]float32{-1.76968614, 0.62421, 1.0612931, -0.283521, 1.25854718},
			2.3575135930492666,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, float64(L2(tt.a, tt.b)), 1e-5)
			assert.InDelta(t, tt.expected, float64(L2Scalar(tt.a, tt.b)), 1e-6)
		})
	}
}

func TestL2_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 3, 4, 5, 8, 13, 64, 131} {
		a := make([]float32, n)
		b := make([]float32, n)
		for i := range a {
			a[i] = r.Float32()*10 - 5
			b[i] = r.Float32()*10 - 5
		}
		assert.Equal(t, float32(0), L2(a, a), "identity n=%d", n)
		assert.Equal(t, L2(a, b), L2(b, a), "symmetry n=%d", n)
		assert.InDelta(t, SquaredL2Scalar(a, b), SquaredL2(a, b), 1e-5*float64(SquaredL2Scalar(a, b))+1e-6, "n=%d", n)
	}
}

func TestKernelSelection(t *testing.T) {
	prev := Active()
	t.Cleanup(func() { require.NoError(t, Use(prev)) })

	ks := Kernels()
	require.NotEmpty(t, ks)
	assert.Contains(t, ks, KernelScalar)

	for _, k := range ks {
		require.NoError(t, Use(k))
		assert.Equal(t, k, Active())
		assert.InDelta(t, float32(5), L2([]float32{3, 4, 0, 0, 0}, []float32{0, 0, 0, 0, 0}), 1e-6)
	}

	k, ok := ParseKernel("lanes8")
	assert.True(t, ok)
	assert.Equal(t, KernelLanes8, k)
	_, ok = ParseKernel("bogus")
	assert.False(t, ok)
}
