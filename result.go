package lloyd

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lloyd/internal/conv"
	"github.com/hupe1980/lloyd/internal/kmeans"
)

// PassStats describes one assignment pass.
type PassStats struct {
	Pass    int
	Changed int
	// Inertia is NaN unless inertia tracking is enabled.
	Inertia  float64
	Duration time.Duration
}

// Result is the outcome of a fit. It is not modified after Fit returns.
type Result struct {
	// Centroids holds k centroids of the dataset's dimension.
	Centroids [][]float32
	// Labels maps every sample index to its centroid index.
	Labels []int
	// Iterations is the number of assignment passes executed.
	Iterations int
	// State is Converged or IterationLimitReached.
	State State
	// Inertia is the sum of squared distances from each sample to its
	// assigned centroid.
	Inertia  float64
	Duration time.Duration
	Passes   []PassStats

	flat []float32
	dim  int
}

func (r *Result) setCentroids(flat []float32, k, dim int) {
	r.flat = flat
	r.dim = dim
	r.Centroids = make([][]float32, k)
	for c := range k {
		lo, hi := c*dim, (c+1)*dim
		r.Centroids[c] = flat[lo:hi:hi]
	}
}

// Converged reports whether the labels stabilized within the pass budget.
func (r *Result) Converged() bool { return r.State == Converged }

// Sizes returns the number of samples in each cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Centroids))
	for _, c := range r.Labels {
		sizes[c]++
	}
	return sizes
}

// Predict returns the centroid nearest to sample and the squared distance
// to it. sample must have the dimension of the fitted data.
func (r *Result) Predict(sample []float32) (int, float32, error) {
	if len(sample) != r.dim {
		return 0, 0, fmt.Errorf("%w: sample has %d components, want %d", ErrShapeMismatch, len(sample), r.dim)
	}
	c, d := kmeans.Nearest(sample, r.flat, r.dim)
	return c, d, nil
}

// Members returns the sample indices assigned to cluster c.
func (r *Result) Members(c int) (*roaring.Bitmap, error) {
	if c < 0 || c >= len(r.Centroids) {
		return nil, fmt.Errorf("cluster %d out of range [0,%d)", c, len(r.Centroids))
	}
	bm := roaring.New()
	for i, l := range r.Labels {
		if l != c {
			continue
		}
		id, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		bm.Add(id)
	}
	return bm, nil
}

// Memberships returns one bitmap of sample indices per cluster, built in a
// single pass over the labels.
func (r *Result) Memberships() ([]*roaring.Bitmap, error) {
	out := make([]*roaring.Bitmap, len(r.Centroids))
	for c := range out {
		out[c] = roaring.New()
	}
	for i, l := range r.Labels {
		id, err := conv.IntToUint32(i)
		if err != nil {
			return nil, err
		}
		out[l].Add(id)
	}
	for _, bm := range out {
		bm.RunOptimize()
	}
	return out, nil
}
