package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		want      float64
	}{
		{"identical", []int{1, 0}, []int{1, 0}, 1.0},
		{"swapped", []int{0, 1}, []int{1, 0}, 0.0},
		{"half", []int{1, 0}, []int{1, 2}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.predicted, tt.truth)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccuracy_Errors(t *testing.T) {
	_, err := Accuracy([]int{1}, []int{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Accuracy(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestContingency(t *testing.T) {
	m, err := Contingency([]int{0, 0, 1, 2}, []int{1, 1, 0, 0})
	require.NoError(t, err)

	want := mat.NewDense(3, 2, []float64{
		0, 2,
		1, 0,
		1, 0,
	})
	assert.True(t, mat.Equal(want, m))

	_, err = Contingency([]int{-1}, []int{0})
	assert.ErrorIs(t, err, ErrNegativeLabel)
}

func TestMatchedAccuracy(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		want      float64
	}{
		{"identical", []int{1, 0}, []int{1, 0}, 1.0},
		{"swapped", []int{0, 1}, []int{1, 0}, 1.0},
		{"permuted three", []int{2, 2, 0, 0, 1, 1}, []int{0, 0, 1, 1, 2, 2}, 1.0},
		{"one mistake", []int{1, 1, 1, 0, 0, 1}, []int{0, 0, 0, 1, 1, 1}, 5.0 / 6},
		{"more clusters than classes", []int{0, 1, 2, 2}, []int{0, 0, 1, 1}, 0.75},
		{"more classes than clusters", []int{0, 0, 0, 0}, []int{0, 1, 2, 2}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchedAccuracy(tt.predicted, tt.truth)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestMatching(t *testing.T) {
	mapping, err := Matching([]int{2, 2, 0, 0, 1, 1}, []int{0, 0, 1, 1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, mapping)

	mapping, err = Matching([]int{0, 1, 2, 2}, []int{0, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, mapping[2])
	assert.Contains(t, mapping, -1)
}

func TestRelabel(t *testing.T) {
	assert.Equal(t, []int{5, -1, -1}, Relabel([]int{0, 1, 7}, []int{5, -1}))
}

func TestMaxWeightMatching(t *testing.T) {
	// Greedy picks (0,0)=9 and then (1,1)=1; the optimum is 8+8.
	w := mat.NewDense(2, 2, []float64{
		9, 8,
		8, 1,
	})
	assert.Equal(t, []int{1, 0}, maxWeightMatching(w))
}
