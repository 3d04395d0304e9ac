package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/lloyd/dataset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Derive returns an independent *rand.Rand seeded from this RNG, suitable
// for lloyd.WithRand.
func (r *RNG) Derive() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rand.New(rand.NewSource(r.rand.Int63()))
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// FillGaussian fills dst with standard normal values.
func (r *RNG) FillGaussian(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = float32(r.rand.NormFloat64())
	}
}

// Uniform returns a dataset of n samples with components in [-1, 1).
func Uniform(r *RNG, n, dim int) *dataset.Dataset {
	buf := make([]float32, n*dim)
	r.FillUniformRange(buf, -1, 1)
	return mustDataset(buf, dim)
}

// Blobs returns clusters*perCluster samples scattered with Gaussian noise
// of standard deviation spread around random centers in [-50, 50)^dim.
func Blobs(r *RNG, clusters, perCluster, dim int, spread float32) *dataset.Dataset {
	ds, _ := LabeledBlobs(r, clusters, perCluster, dim, spread)
	return ds
}

// LabeledBlobs is Blobs that also returns the generating cluster of every
// sample. Sample i belongs to cluster i % clusters.
func LabeledBlobs(r *RNG, clusters, perCluster, dim int, spread float32) (*dataset.Dataset, []int) {
	centers := make([]float32, clusters*dim)
	r.FillUniformRange(centers, -50, 50)

	n := clusters * perCluster
	buf := make([]float32, n*dim)
	r.FillGaussian(buf)

	labels := make([]int, n)
	for i := range n {
		c := i % clusters
		labels[i] = c
		center := centers[c*dim : (c+1)*dim]
		vec := buf[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = center[j] + vec[j]*spread
		}
	}
	return mustDataset(buf, dim), labels
}

func mustDataset(buf []float32, dim int) *dataset.Dataset {
	ds, err := dataset.New(buf, dim)
	if err != nil {
		panic(err)
	}
	return ds
}
