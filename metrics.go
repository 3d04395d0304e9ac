package lloyd

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting fit metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus; see package metrics/prometheus.
type MetricsCollector interface {
	// RecordIteration is called after each assignment pass. changed is the
	// number of samples whose label moved. inertia is NaN unless inertia
	// tracking is enabled.
	RecordIteration(pass, changed int, inertia float64, duration time.Duration)

	// RecordEmptyClusters is called when an update step leaves clusters
	// without members.
	RecordEmptyClusters(count int)

	// RecordFit is called once per Fit. err is nil if successful.
	RecordFit(iterations int, state State, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, int, float64, time.Duration) {}
func (NoopMetricsCollector) RecordEmptyClusters(int)                         {}
func (NoopMetricsCollector) RecordFit(int, State, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	FitCount        atomic.Int64
	FitErrors       atomic.Int64
	FitConverged    atomic.Int64
	FitTotalNanos   atomic.Int64
	PassCount       atomic.Int64
	PassTotalNanos  atomic.Int64
	LabelChanges    atomic.Int64
	EmptyClusters   atomic.Int64
	lastInertiaBits atomic.Uint64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_, changed int, inertia float64, duration time.Duration) {
	b.PassCount.Add(1)
	b.PassTotalNanos.Add(duration.Nanoseconds())
	b.LabelChanges.Add(int64(changed))
	b.lastInertiaBits.Store(math.Float64bits(inertia))
}

// RecordEmptyClusters implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEmptyClusters(count int) {
	b.EmptyClusters.Add(int64(count))
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(_ int, state State, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
		return
	}
	if state == Converged {
		b.FitConverged.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:      b.FitCount.Load(),
		FitErrors:     b.FitErrors.Load(),
		FitConverged:  b.FitConverged.Load(),
		FitAvgNanos:   avg(b.FitTotalNanos.Load(), b.FitCount.Load()),
		PassCount:     b.PassCount.Load(),
		PassAvgNanos:  avg(b.PassTotalNanos.Load(), b.PassCount.Load()),
		LabelChanges:  b.LabelChanges.Load(),
		EmptyClusters: b.EmptyClusters.Load(),
		LastInertia:   math.Float64frombits(b.lastInertiaBits.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount      int64
	FitErrors     int64
	FitConverged  int64
	FitAvgNanos   int64
	PassCount     int64
	PassAvgNanos  int64
	LabelChanges  int64
	EmptyClusters int64
	LastInertia   float64
}
