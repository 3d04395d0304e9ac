package distance

import (
	"github.com/hupe1980/lloyd/internal/simd"
)

// L2 calculates the Euclidean distance sqrt(sum((a_i-b_i)^2)).
// Assumes vectors are the same length (caller's responsibility).
// Uses SIMD acceleration when available.
func L2(a, b []float32) float32 {
	return simd.L2(a, b)
}

// SquaredL2 calculates the squared Euclidean distance.
// It orders points exactly like L2 and skips the square root, which makes
// it the right choice for nearest-centroid searches.
func SquaredL2(a, b []float32) float32 {
	return simd.SquaredL2(a, b)
}

// L2Scalar is the non-vectorized reference for L2.
func L2Scalar(a, b []float32) float32 {
	return simd.L2Scalar(a, b)
}

// SquaredL2Scalar is the non-vectorized reference for SquaredL2.
func SquaredL2Scalar(a, b []float32) float32 {
	return simd.SquaredL2Scalar(a, b)
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Kernel identifies a distance kernel implementation.
type Kernel = simd.Kernel

// Available kernels.
const (
	KernelScalar = simd.Scalar
	KernelLanes4 = simd.Lanes4
	KernelLanes8 = simd.Lanes8
	KernelVek    = simd.Vek
)

// ParseKernel parses a kernel name such as "lanes8" or "vek".
func ParseKernel(s string) (Kernel, bool) {
	return simd.ParseKernel(s)
}

// Active returns the kernel used by L2 and SquaredL2.
func Active() Kernel {
	return simd.Active()
}

// Kernels returns the kernels the current CPU can run accelerated.
func Kernels() []Kernel {
	return simd.Kernels()
}

// Use switches the kernel used by L2 and SquaredL2.
// Not safe while distances are being computed on other goroutines.
func Use(k Kernel) error {
	return simd.Use(k)
}

// Features lists detected CPU features relevant to kernel selection.
func Features() []string {
	return simd.Features()
}
