package lloyd

import (
	"context"
	"math"
	"time"

	"github.com/hupe1980/lloyd/dataset"
	"github.com/hupe1980/lloyd/internal/kmeans"
)

// KMeans clusters datasets into k groups with Lloyd's algorithm.
//
// A KMeans is immutable and may run concurrent fits unless it was built
// with WithRand.
type KMeans struct {
	k    int
	opts options
}

// New returns a KMeans for k clusters. k must be at least 1; whether it
// fits the data is checked by Fit.
func New(k int, optFns ...Option) (*KMeans, error) {
	if k < 1 {
		return nil, &ClusterCountError{K: k, N: -1}
	}

	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &KMeans{k: k, opts: o}, nil
}

// Fit is a shorthand for New followed by (*KMeans).Fit.
func Fit(ctx context.Context, ds *dataset.Dataset, k int, optFns ...Option) (*Result, error) {
	km, err := New(k, optFns...)
	if err != nil {
		return nil, err
	}
	return km.Fit(ctx, ds)
}

// K returns the configured cluster count.
func (km *KMeans) K() int { return km.k }

// Fit partitions ds into k clusters.
//
// Initial centroids are k distinct samples drawn uniformly at random. Each
// pass assigns every sample to its nearest centroid; when a pass reproduces
// the previous labels the fit has converged and the centroids that produced
// them are returned. Otherwise centroids move to the mean of their members
// and the next pass starts. Running out of passes is not an error: the
// result reports IterationLimitReached.
//
// Fit fails with ErrInvalidClusterCount when k exceeds the number of
// samples and with ctx.Err() when ctx is canceled.
func (km *KMeans) Fit(ctx context.Context, ds *dataset.Dataset) (*Result, error) {
	start := time.Now()

	res, err := km.fit(ctx, ds)

	duration := time.Since(start)
	iterations, state, inertia := 0, Initializing, 0.0
	if res != nil {
		res.Duration = duration
		iterations, state, inertia = res.Iterations, res.State, res.Inertia
	}

	km.opts.metricsCollector.RecordFit(iterations, state, duration, err)
	km.opts.logger.LogFit(ctx, iterations, state, inertia, duration, err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (km *KMeans) fit(ctx context.Context, ds *dataset.Dataset) (*Result, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, dim, k := ds.Len(), ds.Dim(), km.k
	if k > n {
		return nil, &ClusterCountError{K: k, N: n}
	}

	o := &km.opts
	data := ds.Raw()
	rng := o.newRand()

	// Initializing.
	seeds := kmeans.SampleDistinct(rng, n, k)
	centroids := make([]float32, k*dim)
	for c, idx := range seeds {
		copy(centroids[c*dim:(c+1)*dim], ds.At(idx))
	}
	labels := make([]int, n)
	o.logger.LogInit(ctx, seeds)

	res := &Result{
		State:  IterationLimitReached,
		Passes: make([]PassStats, 0, min(o.maxIterations, 64)),
	}

	var dists []float32
	if o.trackInertia {
		dists = make([]float32, n)
	}
	assignOpts := kmeans.AssignOptions{Workers: o.workers, ChunkSize: o.chunkSize}

	// Assigning.
	for pass := 1; pass <= o.maxIterations; pass++ {
		passStart := time.Now()

		next := make([]int, n)
		if err := kmeans.Assign(ctx, data, dim, centroids, next, dists, assignOpts); err != nil {
			return nil, err
		}

		changed := countChanged(labels, next)
		labels = next
		res.Iterations = pass

		// Labels start all-zero, so a first pass that puts every sample in
		// cluster 0 has already converged.
		converged := changed == 0

		inertia := math.NaN()
		if o.trackInertia {
			inertia = kmeans.SumDistances(dists)
		}

		if !converged {
			var counts []int
			centroids, counts = kmeans.Update(data, dim, labels, k, centroids, o.emptyPolicy, rng)
			if empty := kmeans.Empty(counts); len(empty) > 0 {
				o.logger.LogEmptyClusters(ctx, pass, empty, o.emptyPolicy)
				o.metricsCollector.RecordEmptyClusters(len(empty))
			}
		}

		d := time.Since(passStart)
		res.Passes = append(res.Passes, PassStats{Pass: pass, Changed: changed, Inertia: inertia, Duration: d})
		o.logger.LogIteration(ctx, pass, changed, inertia, o.trackInertia)
		o.metricsCollector.RecordIteration(pass, changed, inertia, d)

		if converged {
			res.State = Converged
			break
		}
	}

	res.setCentroids(centroids, k, dim)
	res.Labels = labels
	res.Inertia = kmeans.Inertia(data, dim, centroids, labels)
	return res, nil
}

func countChanged(prev, next []int) int {
	changed := 0
	for i := range next {
		if prev[i] != next[i] {
			changed++
		}
	}
	return changed
}
