package simd

import (
	"fmt"
	"os"
	"strings"
)

// Kernel identifies a distance kernel implementation.
type Kernel uint8

const (
	// Scalar is the portable one-element-at-a-time implementation.
	Scalar Kernel = iota
	// Lanes4 is a bounds-checked Go loop unrolled over four independent
	// accumulators, not hardware SIMD. Selected on SSE2/NEON hosts.
	Lanes4
	// Lanes8 is the same unrolled Go loop over eight accumulators,
	// picked on AVX hosts.
	Lanes8
	// Vek delegates to the AVX2+FMA assembly kernels of viterin/vek.
	Vek
)

// EnvOverride names the environment variable that forces a kernel.
const EnvOverride = "LLOYD_SIMD"

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Lanes4:
		return "lanes4"
	case Lanes8:
		return "lanes8"
	case Vek:
		return "vek"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Width returns the number of float32 lanes processed per step.
func (k Kernel) Width() int {
	switch k {
	case Lanes4:
		return 4
	case Lanes8, Vek:
		return 8
	default:
		return 1
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic":
		return Scalar, true
	case "lanes4", "sse2", "neon":
		return Lanes4, true
	case "lanes8", "avx":
		return Lanes8, true
	case "vek", "avx2":
		return Vek, true
	default:
		return Scalar, false
	}
}

// Package-level state, written once by the platform init and by Use.
var (
	active      Kernel
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasSSE2  bool // x86-64 baseline
	hasAVX   bool // x86-64 AVX
	hasAVX2  bool // x86-64 AVX2 + FMA
	hasASIMD bool // ARM64 NEON
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	best := selectBest()
	if override := os.Getenv(EnvOverride); override != "" {
		if k, ok := ParseKernel(override); ok && Available(k) {
			hasOverride = true
			best = k
		}
	}
	bind(best)
}

func selectBest() Kernel {
	switch {
	case hasAVX2:
		return Vek
	case hasAVX:
		return Lanes8
	case hasSSE2, hasASIMD:
		return Lanes4
	default:
		return Scalar
	}
}

// Available reports whether k can run accelerated on this CPU.
// Scalar is always available.
func Available(k Kernel) bool {
	switch k {
	case Scalar:
		return true
	case Lanes4:
		return hasSSE2 || hasASIMD || hasAVX
	case Lanes8:
		return hasAVX
	case Vek:
		return hasAVX2
	default:
		return false
	}
}

// Kernels returns every kernel available on this CPU, narrowest first.
func Kernels() []Kernel {
	var out []Kernel
	for _, k := range []Kernel{Scalar, Lanes4, Lanes8, Vek} {
		if Available(k) {
			out = append(out, k)
		}
	}
	return out
}

// Active returns the kernel currently bound to the public entry points.
func Active() Kernel {
	return active
}

// IsOverridden returns true if LLOYD_SIMD selected the active kernel.
func IsOverridden() bool {
	return hasOverride
}

// Use rebinds the public entry points to k.
//
// Use is not safe to call while distances are being computed concurrently.
// It exists for benchmarks, tests and the CLI.
func Use(k Kernel) error {
	if !Available(k) {
		return fmt.Errorf("simd: kernel %s not available on this CPU", k)
	}
	bind(k)
	return nil
}

// Features lists the detected CPU features relevant to kernel selection.
func Features() []string {
	var out []string
	if hasSSE2 {
		out = append(out, "sse2")
	}
	if hasAVX {
		out = append(out, "avx")
	}
	if hasAVX2 {
		out = append(out, "avx2+fma")
	}
	if hasASIMD {
		out = append(out, "asimd")
	}
	return out
}
