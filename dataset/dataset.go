package dataset

import (
	"fmt"
	"iter"
)

// Dataset is an immutable collection of n samples of dimension d backed by
// one flat buffer of length n*d.
type Dataset struct {
	buf []float32
	dim int
	n   int
}

// New wraps buf as a dataset of dimension dim. buf is not copied; the
// caller hands over ownership and must not modify it afterwards.
//
// It fails with ErrInvalidDimension when dim <= 0 and with a
// *ShapeMismatchError when len(buf) is not a multiple of dim.
func New(buf []float32, dim int) (*Dataset, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	if len(buf)%dim != 0 {
		return nil, &ShapeMismatchError{Elements: len(buf), Dim: dim, Samples: -1}
	}
	return &Dataset{buf: buf, dim: dim, n: len(buf) / dim}, nil
}

// FromSamples copies samples into a new flat buffer. Every sample must
// have the length of the first one.
func FromSamples(samples [][]float32) (*Dataset, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples to infer it from", ErrInvalidDimension)
	}
	dim := len(samples[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	buf := make([]float32, 0, len(samples)*dim)
	for i, s := range samples {
		if len(s) != dim {
			return nil, fmt.Errorf("sample %d has %d components, want %d: %w", i, len(s), dim, ErrShapeMismatch)
		}
		buf = append(buf, s...)
	}
	return New(buf, dim)
}

// Len returns the number of samples.
func (ds *Dataset) Len() int { return ds.n }

// Dim returns the dimension of every sample.
func (ds *Dataset) Dim() int { return ds.dim }

// At returns a view of sample i. It panics if i is out of range.
func (ds *Dataset) At(i int) []float32 {
	lo, hi := i*ds.dim, (i+1)*ds.dim
	return ds.buf[lo:hi:hi]
}

// All yields (index, sample) pairs in storage order. Each call starts a
// fresh pass.
func (ds *Dataset) All() iter.Seq2[int, []float32] {
	return func(yield func(int, []float32) bool) {
		for i := range ds.n {
			if !yield(i, ds.At(i)) {
				return
			}
		}
	}
}

// Samples yields sample views in storage order.
func (ds *Dataset) Samples() iter.Seq[[]float32] {
	return func(yield func([]float32) bool) {
		for i := range ds.n {
			if !yield(ds.At(i)) {
				return
			}
		}
	}
}

// Raw returns the backing buffer. It must not be modified.
func (ds *Dataset) Raw() []float32 { return ds.buf }
