package kmeans

import (
	"context"
	"runtime"

	"github.com/hupe1980/lloyd/distance"
	"golang.org/x/sync/errgroup"
)

// MinChunkSize is the smallest default chunk handed to one worker.
const MinChunkSize = 256

// AssignOptions controls how the assignment step is split across goroutines.
type AssignOptions struct {
	// Workers bounds the number of concurrent goroutines.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
	// ChunkSize is the number of samples per task. Zero or negative means
	// ceil(n/Workers), but at least MinChunkSize.
	ChunkSize int
}

func (o AssignOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o AssignOptions) chunkSize(n, workers int) int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}
	return max((n+workers-1)/workers, MinChunkSize)
}

// Nearest returns the index of the centroid closest to sample and the
// squared distance to it. Ties go to the lowest index.
func Nearest(sample, centroids []float32, dim int) (int, float32) {
	best := 0
	bestDist := distance.SquaredL2(sample, centroids[:dim])

	k := len(centroids) / dim
	for c := 1; c < k; c++ {
		d := distance.SquaredL2(sample, centroids[c*dim:(c+1)*dim])
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

// Assign writes the nearest centroid of every sample in data into labels,
// which must have len(data)/dim entries. When dists is non-nil it receives
// each sample's squared distance to that centroid.
//
// Work is split into contiguous chunks run by an errgroup. Every chunk
// writes only its own range, so the result does not depend on Workers or
// ChunkSize. Cancellation is checked between chunks.
func Assign(ctx context.Context, data []float32, dim int, centroids []float32, labels []int, dists []float32, opts AssignOptions) error {
	return run(ctx, len(labels), opts, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			label, d := Nearest(data[i*dim:(i+1)*dim], centroids, dim)
			labels[i] = label
			if dists != nil {
				dists[i] = d
			}
		}
	})
}

// AssignIndices is Assign restricted to the samples listed in idx.
// labels is indexed by sample, not by position in idx; idx must not
// contain duplicates.
func AssignIndices(ctx context.Context, data []float32, dim int, centroids []float32, idx []int, labels []int, opts AssignOptions) error {
	return run(ctx, len(idx), opts, func(lo, hi int) {
		for _, i := range idx[lo:hi] {
			labels[i], _ = Nearest(data[i*dim:(i+1)*dim], centroids, dim)
		}
	})
}

func run(ctx context.Context, n int, opts AssignOptions, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	workers := opts.workers()
	chunk := opts.chunkSize(n, workers)

	if workers == 1 || chunk >= n {
		for lo := 0; lo < n; lo += chunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(lo, min(lo+chunk, n))
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < n; lo += chunk {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Inertia returns the sum of squared distances from every sample to its
// assigned centroid, accumulated in float64.
func Inertia(data []float32, dim int, centroids []float32, labels []int) float64 {
	var sum float64
	for i, c := range labels {
		sum += float64(distance.SquaredL2(data[i*dim:(i+1)*dim], centroids[c*dim:(c+1)*dim]))
	}
	return sum
}

// SumDistances adds up per-sample squared distances as produced by Assign.
func SumDistances(dists []float32) float64 {
	var sum float64
	for _, d := range dists {
		sum += float64(d)
	}
	return sum
}
