package prometheus

import (
	"math"
	"time"

	"github.com/hupe1980/lloyd"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric when NewCollector gets an empty
// namespace.
const DefaultNamespace = "lloyd"

// Collector implements lloyd.MetricsCollector on Prometheus metrics.
type Collector struct {
	fits          *prometheus.CounterVec
	fitDuration   prometheus.Histogram
	fitIterations prometheus.Histogram
	passDuration  prometheus.Histogram
	labelChanges  prometheus.Counter
	emptyClusters prometheus.Counter
	inertia       prometheus.Gauge
}

var _ lloyd.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		fits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fits_total",
			Help:      "Completed fits by final state",
		}, []string{"state"}),
		fitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fit_duration_seconds",
			Help:      "Wall time of a fit",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		fitIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fit_iterations",
			Help:      "Assignment passes per fit",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Wall time of one assignment and update pass",
			Buckets:   prometheus.DefBuckets,
		}),
		labelChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "label_changes_total",
			Help:      "Samples that moved to a different cluster",
		}),
		emptyClusters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_clusters_total",
			Help:      "Clusters left without members by an update step",
		}),
		inertia: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inertia",
			Help:      "Inertia of the most recent tracked pass",
		}),
	}

	for _, m := range []prometheus.Collector{
		c.fits, c.fitDuration, c.fitIterations, c.passDuration,
		c.labelChanges, c.emptyClusters, c.inertia,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordIteration implements lloyd.MetricsCollector.
func (c *Collector) RecordIteration(_, changed int, inertia float64, d time.Duration) {
	c.passDuration.Observe(d.Seconds())
	c.labelChanges.Add(float64(changed))
	if !math.IsNaN(inertia) {
		c.inertia.Set(inertia)
	}
}

// RecordEmptyClusters implements lloyd.MetricsCollector.
func (c *Collector) RecordEmptyClusters(count int) {
	c.emptyClusters.Add(float64(count))
}

// RecordFit implements lloyd.MetricsCollector.
func (c *Collector) RecordFit(iterations int, state lloyd.State, d time.Duration, err error) {
	label := state.String()
	if err != nil {
		label = "error"
	}
	c.fits.WithLabelValues(label).Inc()
	c.fitDuration.Observe(d.Seconds())
	if err == nil {
		c.fitIterations.Observe(float64(iterations))
	}
}
