// Package lloyd clusters float32 samples with Lloyd's k-means algorithm.
//
// # Quick Start
//
//	ds, _ := dataset.ReadFile("samples.f32", n, 2)
//	km, _ := lloyd.New(3, lloyd.WithSeed(42), lloyd.WithMaxIterations(1000))
//	res, _ := km.Fit(ctx, ds)
//	fmt.Println(res.State, res.Iterations, res.Labels[:10])
//
// # Algorithm
//
// Fit seeds k centroids with k distinct samples drawn uniformly at random,
// then alternates two steps:
//
//   - assignment: every sample gets the label of its nearest centroid
//     (squared Euclidean distance, ties to the lowest index)
//   - update: every centroid moves to the mean of its members
//
// The fit converges when an assignment pass reproduces the previous labels.
// It also stops after WithMaxIterations passes; that is reported through
// Result.State, not as an error.
//
// # Empty Clusters
//
// A cluster can lose all its members during an update. With EmptyKeep (the
// default) its centroid stays where it was; with EmptyResample it jumps to a
// random sample. Either way the fit continues.
//
// # Parallelism
//
// The assignment step runs on up to WithWorkers goroutines over contiguous
// sample ranges. Labels do not depend on the worker count or chunk size.
// Everything else runs on the calling goroutine.
//
// # Distance Kernels
//
// Distances go through package distance, which picks a vectorized kernel
// for the current CPU at startup. Set LLOYD_SIMD=scalar|lanes4|lanes8|vek
// to override the choice.
package lloyd
