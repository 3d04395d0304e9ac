package simd

import (
	"math"
	"sync"

	"github.com/viterin/vek/vek32"
)

// Kernel function pointers. Scalar is the default; bind swaps them in
// once at init (and again on Use).
var (
	squaredL2Impl = SquaredL2Scalar
	l2Impl        = L2Scalar
)

func bind(k Kernel) {
	switch k {
	case Lanes4:
		squaredL2Impl = squaredL2Lanes4
		l2Impl = func(a, b []float32) float32 { return sqrt32(squaredL2Lanes4(a, b)) }
	case Lanes8:
		squaredL2Impl = squaredL2Lanes8
		l2Impl = func(a, b []float32) float32 { return sqrt32(squaredL2Lanes8(a, b)) }
	case Vek:
		squaredL2Impl = squaredL2Vek
		l2Impl = l2Vek
	default:
		k = Scalar
		squaredL2Impl = SquaredL2Scalar
		l2Impl = L2Scalar
	}
	active = k
}

// SquaredL2 calculates the squared L2 distance with the active kernel.
//
// SAFETY: Assumes len(a) == len(b). Lane kernels reslice b to len(a),
// so a shorter b panics with an index error instead of reading past it.
func SquaredL2(a, b []float32) float32 {
	return squaredL2Impl(a, b)
}

// L2 calculates the Euclidean distance with the active kernel.
func L2(a, b []float32) float32 {
	return l2Impl(a, b)
}

// SquaredL2Scalar is the reference squared L2 implementation.
func SquaredL2Scalar(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// L2Scalar is the reference Euclidean distance implementation.
func L2Scalar(a, b []float32) float32 {
	return sqrt32(SquaredL2Scalar(a, b))
}

// SquaredL2With computes the squared L2 distance with a specific kernel,
// regardless of which one is active. Unavailable kernels still run; only
// Vek loses its acceleration (vek falls back to pure Go).
func SquaredL2With(k Kernel, a, b []float32) float32 {
	switch k {
	case Lanes4:
		return squaredL2Lanes4(a, b)
	case Lanes8:
		return squaredL2Lanes8(a, b)
	case Vek:
		return squaredL2Vek(a, b)
	default:
		return SquaredL2Scalar(a, b)
	}
}

func squaredL2Lanes4(a, b []float32) float32 {
	b = b[:len(a)]
	var acc [4]float32
	i := 0
	for ; i+4 <= len(a); i += 4 {
		x := (*[4]float32)(a[i : i+4])
		y := (*[4]float32)(b[i : i+4])
		d0, d1, d2, d3 := x[0]-y[0], x[1]-y[1], x[2]-y[2], x[3]-y[3]
		acc[0] += d0 * d0
		acc[1] += d1 * d1
		acc[2] += d2 * d2
		acc[3] += d3 * d3
	}
	sum := (acc[0] + acc[1]) + (acc[2] + acc[3])
	for ; i < len(a); i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func squaredL2Lanes8(a, b []float32) float32 {
	b = b[:len(a)]
	var acc [8]float32
	i := 0
	for ; i+8 <= len(a); i += 8 {
		x := (*[8]float32)(a[i : i+8])
		y := (*[8]float32)(b[i : i+8])
		for l := range acc {
			d := x[l] - y[l]
			acc[l] += d * d
		}
	}
	sum := ((acc[0] + acc[1]) + (acc[2] + acc[3])) + ((acc[4] + acc[5]) + (acc[6] + acc[7]))
	for ; i < len(a); i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func l2Vek(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	return vek32.Distance(a, b[:len(a)])
}

// vekScratch holds difference buffers for squaredL2Vek; assignment calls
// it from many goroutines at once.
var vekScratch = sync.Pool{
	New: func() any {
		buf := make([]float32, 0, 256)
		return &buf
	},
}

func squaredL2Vek(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	p := vekScratch.Get().(*[]float32)
	buf := *p
	if cap(buf) < len(a) {
		buf = make([]float32, len(a))
	}
	buf = buf[:len(a)]

	vek32.Sub_Into(buf, a, b[:len(a)])
	sum := vek32.Dot(buf, buf)

	*p = buf
	vekScratch.Put(p)
	return sum
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
