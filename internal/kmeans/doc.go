// Package kmeans implements the building blocks of Lloyd's algorithm over a
// flat, row-major sample buffer: distinct-index seeding, the parallel
// assignment step, the centroid update step and inertia.
//
// Centroids are stored flat as well (k*dim values). None of the functions
// validate shapes; the root package does that once before a fit starts.
package kmeans
