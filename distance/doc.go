// Package distance provides Euclidean distance and centroid kernels.
//
// Distance functions dispatch to the kernel selected by internal/simd at
// start-up (vek AVX2, 8-lane, 4-lane or scalar). The scalar variants are
// always available as a reference.
//
// # Usage
//
//	d := distance.L2(a, b)
//	sq := distance.SquaredL2(a, b)
//	mean, ok := distance.Centroid(members)
package distance
