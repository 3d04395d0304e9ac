// Package dataset holds k-means input: n samples of dimension d stored in one
// flat, row-major []float32.
//
// Samples handed out by a Dataset are views into that buffer, never copies.
// Callers must treat them as read-only.
//
// The package also owns the on-disk formats:
//
//   - samples: consecutive little-endian float32 values, n*d of them, no header
//   - labels: one little-endian uint64 per sample
//   - float labels: one little-endian float32 class id per sample
//
// File and blob names ending in ".zst" or ".lz4" are transparently
// (de)compressed with zstd or LZ4.
package dataset
