package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is wrapped by every *ShapeMismatchError.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidDimension is returned when the dimension is not positive.
	ErrInvalidDimension = errors.New("dimension must be positive")

	// ErrInvalidLabel is returned for labels that cannot be encoded or decoded.
	ErrInvalidLabel = errors.New("invalid label")
)

// ShapeMismatchError reports a buffer whose size disagrees with its
// declared shape.
type ShapeMismatchError struct {
	// Elements is the number of whole float32 values present.
	Elements int
	// Dim is the declared dimension.
	Dim int
	// Samples is the declared sample count, or -1 when none was declared.
	Samples int
	// Trailing counts bytes after the last whole element.
	Trailing int
}

func (e *ShapeMismatchError) Error() string {
	if e.Samples < 0 {
		return fmt.Sprintf("shape mismatch: %d elements not divisible by dimension %d", e.Elements, e.Dim)
	}
	if e.Trailing > 0 {
		return fmt.Sprintf("shape mismatch: %d elements and %d trailing bytes, want %d samples of dimension %d",
			e.Elements, e.Trailing, e.Samples, e.Dim)
	}
	return fmt.Sprintf("shape mismatch: %d elements, want %d samples of dimension %d", e.Elements, e.Samples, e.Dim)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// IOError wraps a failure to open, read or write a file or blob.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// wrapIO leaves shape and label errors untouched and attaches op and path
// to everything else.
func wrapIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrShapeMismatch) || errors.Is(err, ErrInvalidLabel) || errors.Is(err, ErrInvalidDimension) {
		return err
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
