// Package prometheus exports fit metrics through
// github.com/prometheus/client_golang.
//
//	reg := prometheus.NewRegistry()
//	mc, err := lloydprom.NewCollector(reg, "lloyd")
//	km, err := lloyd.New(k, lloyd.WithMetricsCollector(mc))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package prometheus
