// Package testutil provides deterministic data generators for tests and
// benchmarks.
//
// This package is intended for use in tests and benchmarks only.
//
//	rng := testutil.NewRNG(seed)
//	ds, truth := testutil.LabeledBlobs(rng, 3, 100, 2, 0.5)
package testutil
