package lloyd

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/lloyd/internal/kmeans"
)

// DefaultMaxIterations bounds the number of assignment passes.
const DefaultMaxIterations = 300

// EmptyPolicy decides what happens to a centroid that no sample chose.
type EmptyPolicy = kmeans.EmptyPolicy

const (
	// EmptyKeep leaves an empty cluster's centroid where it was. Default.
	EmptyKeep = kmeans.EmptyKeep
	// EmptyResample moves an empty cluster's centroid onto a random sample.
	EmptyResample = kmeans.EmptyResample
)

// ParseEmptyPolicy parses "keep" or "resample".
func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	return kmeans.ParseEmptyPolicy(s)
}

type options struct {
	maxIterations    int
	seed             int64
	seeded           bool
	rng              *rand.Rand
	workers          int
	chunkSize        int
	emptyPolicy      EmptyPolicy
	trackInertia     bool
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		maxIterations:    DefaultMaxIterations,
		emptyPolicy:      EmptyKeep,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a KMeans.
type Option func(*options)

// WithMaxIterations caps the number of assignment passes. Zero returns the
// initial centroids untouched.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithSeed makes every Fit draw its initial centroids from a generator
// seeded with seed, so repeated fits of the same data agree.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRand injects the random generator used for seeding and for
// EmptyResample. It takes precedence over WithSeed.
//
// *rand.Rand is not safe for concurrent use; a KMeans configured this way
// must not run fits concurrently.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithWorkers bounds the goroutines used by the assignment step.
// Zero means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets how many samples one assignment task covers.
// Zero picks a size from the sample and worker counts.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithEmptyClusterPolicy selects how empty clusters are handled.
func WithEmptyClusterPolicy(p EmptyPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}

// WithInertiaTracking records the inertia of every pass in Result.Passes,
// the per-pass log line and the metrics collector.
func WithInertiaTracking() Option {
	return func(o *options) {
		o.trackInertia = true
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. A nil collector
// disables metrics.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func (o *options) validate() error {
	switch {
	case o.maxIterations < 0:
		return fmt.Errorf("%w: max iterations %d is negative", ErrInvalidOption, o.maxIterations)
	case o.workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidOption, o.workers)
	case o.chunkSize < 0:
		return fmt.Errorf("%w: chunk size %d is negative", ErrInvalidOption, o.chunkSize)
	case o.emptyPolicy != EmptyKeep && o.emptyPolicy != EmptyResample:
		return fmt.Errorf("%w: %v", ErrInvalidOption, o.emptyPolicy)
	}
	return nil
}

// newRand returns the generator for one fit.
func (o *options) newRand() *rand.Rand {
	switch {
	case o.rng != nil:
		return o.rng
	case o.seeded:
		return rand.New(rand.NewSource(o.seed))
	default:
		return rand.New(rand.NewSource(rand.Int63()))
	}
}
