// Package simd provides float32 squared-L2 distance kernels.
//
// # Kernels
//
//   - scalar: one element per step, the reference implementation
//   - lanes4: plain Go unrolled over four accumulators and bounds-checked [4]float32 views
//   - lanes8: the same with eight accumulators
//   - vek: AVX2 assembly from github.com/viterin/vek, the only hardware SIMD path
//
// Lane kernels handle len%width trailing elements with the scalar loop.
// Runtime CPU feature detection selects the widest kernel the CPU supports.
// Set LLOYD_SIMD to force a kernel (ignored if the CPU lacks it).
//
// Kernels differ from the scalar path only by float32 summation order.
package simd
