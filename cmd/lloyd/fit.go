package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/dataset"
	"github.com/hupe1980/lloyd/eval"
	lloydprom "github.com/hupe1980/lloyd/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const (
	defaultLabelsOut     = "predicted_classes.data"
	defaultMaxIterations = 1000
	previewLabels        = 10
)

type fitFlags struct {
	samples       string
	nsamples      int
	nfeatures     int
	nclusters     int
	maxIterations int
	seed          int64
	workers       int
	empty         string
	labelsOut     string
	centroidsOut  string
	truth         string
	truthFormat   string
	metricsAddr   string
	rateLimit     int
}

func newFitCmd(g *globalFlags) *cobra.Command {
	f := &fitFlags{}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Cluster a sample file and write the predicted labels",
		Example: `  lloyd fit --samples tests/samples.data --nsamples 1000
  lloyd fit --samples s3://bucket/blobs.f32.zst --nsamples 100000 --nfeatures 16 --nclusters 8
  lloyd fit --config fit.yaml --truth tests/classes.data`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runFit(cmd.Context(), cmd.OutOrStdout(), f, cmd.Flags().Changed("seed"), logger)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.samples, "samples", "", "sample file (little-endian float32, row-major)")
	fl.IntVar(&f.nsamples, "nsamples", 0, "number of samples in the file")
	fl.IntVar(&f.nfeatures, "nfeatures", 2, "dimension of every sample")
	fl.IntVar(&f.nclusters, "nclusters", 3, "number of clusters")
	fl.IntVar(&f.maxIterations, "max-iterations", defaultMaxIterations, "maximum assignment passes")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (default: random)")
	fl.IntVar(&f.workers, "workers", 0, "assignment goroutines (default: GOMAXPROCS)")
	fl.StringVar(&f.empty, "empty", "keep", "empty cluster policy (keep, resample)")
	fl.StringVar(&f.labelsOut, "labels-out", defaultLabelsOut, "where to write predicted labels (uint64)")
	fl.StringVar(&f.centroidsOut, "centroids-out", "", "where to write centroids (float32), if set")
	fl.StringVar(&f.truth, "truth", "", "ground-truth labels to score against, if set")
	fl.StringVar(&f.truthFormat, "truth-format", "f32", "ground-truth encoding (f32, u64)")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the fit")
	fl.IntVar(&f.rateLimit, "rate-limit", 0, "limit blob I/O to this many bytes per second")

	return cmd
}

func runFit(ctx context.Context, out io.Writer, f *fitFlags, seeded bool, logger *lloyd.Logger) error {
	if f.samples == "" {
		return errors.New("--samples is required")
	}
	if f.nsamples <= 0 {
		return fmt.Errorf("--nsamples must be positive, got %d", f.nsamples)
	}
	policy, err := lloyd.ParseEmptyPolicy(f.empty)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "nsamples=%d nfeatures=%d nclusters=%d max_iterations=%d\n",
		f.nsamples, f.nfeatures, f.nclusters, f.maxIterations)

	store, name, err := openStore(ctx, f.samples, f.rateLimit)
	if err != nil {
		return err
	}
	ds, err := dataset.Load(ctx, store, name, f.nsamples, f.nfeatures)
	if err != nil {
		return err
	}

	opts := []lloyd.Option{
		lloyd.WithMaxIterations(f.maxIterations),
		lloyd.WithWorkers(f.workers),
		lloyd.WithEmptyClusterPolicy(policy),
		lloyd.WithLogger(logger.WithK(f.nclusters).WithDimension(f.nfeatures).WithSamples(f.nsamples)),
		lloyd.WithInertiaTracking(),
	}
	if seeded {
		opts = append(opts, lloyd.WithSeed(f.seed))
	}

	if f.metricsAddr != "" {
		mc, shutdown, err := serveMetrics(f.metricsAddr, logger)
		if err != nil {
			return err
		}
		defer shutdown()
		opts = append(opts, lloyd.WithMetricsCollector(mc))
	}

	km, err := lloyd.New(f.nclusters, opts...)
	if err != nil {
		return err
	}
	res, err := km.Fit(ctx, ds)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "state=%s iterations=%d inertia=%g duration=%s\n",
		res.State, res.Iterations, res.Inertia, res.Duration.Round(time.Microsecond))
	fmt.Fprintf(out, "predictions: %v\n", res.Labels[:min(previewLabels, len(res.Labels))])

	if err := writeLabels(ctx, f.labelsOut, f.rateLimit, res.Labels); err != nil {
		return err
	}
	if f.centroidsOut != "" {
		if err := writeCentroids(ctx, f.centroidsOut, f.rateLimit, res); err != nil {
			return err
		}
	}

	if f.truth != "" {
		truth, err := readTruth(ctx, f.truth, f.truthFormat, f.rateLimit)
		if err != nil {
			return err
		}
		return printScores(out, res.Labels, truth)
	}
	return nil
}

func writeLabels(ctx context.Context, uri string, rate int, labels []int) error {
	store, name, err := openStore(ctx, uri, rate)
	if err != nil {
		return err
	}
	return dataset.StoreLabels(ctx, store, name, labels)
}

func writeCentroids(ctx context.Context, uri string, rate int, res *lloyd.Result) error {
	dim := len(res.Centroids[0])
	flat := make([]float32, 0, len(res.Centroids)*dim)
	for _, c := range res.Centroids {
		flat = append(flat, c...)
	}
	ds, err := dataset.New(flat, dim)
	if err != nil {
		return err
	}

	store, name, err := openStore(ctx, uri, rate)
	if err != nil {
		return err
	}
	return dataset.Save(ctx, store, name, ds)
}

func readTruth(ctx context.Context, uri, format string, rate int) ([]int, error) {
	store, name, err := openStore(ctx, uri, rate)
	if err != nil {
		return nil, err
	}
	switch format {
	case "f32":
		return dataset.LoadFloatLabels(ctx, store, name)
	case "u64":
		return dataset.LoadLabels(ctx, store, name)
	default:
		return nil, fmt.Errorf("invalid truth format %q (want f32 or u64)", format)
	}
}

func printScores(out io.Writer, predicted, truth []int) error {
	acc, err := eval.Accuracy(predicted, truth)
	if err != nil {
		return err
	}
	matched, err := eval.MatchedAccuracy(predicted, truth)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "accuracy=%.4f matched_accuracy=%.4f\n", acc, matched)
	return nil
}

// serveMetrics exposes a fresh registry on addr until shutdown is called.
func serveMetrics(addr string, logger *lloyd.Logger) (lloyd.MetricsCollector, func(), error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mc, err := lloydprom.NewCollector(reg, lloydprom.DefaultNamespace)
	if err != nil {
		return nil, nil, err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
	return mc, shutdown, nil
}
