package lloyd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lloyd/dataset"
)

var (
	// ErrInvalidClusterCount is returned when k < 1 or k exceeds the number
	// of samples.
	ErrInvalidClusterCount = errors.New("invalid cluster count")

	// ErrInvalidOption is returned by New for out-of-range option values.
	ErrInvalidOption = errors.New("invalid option")

	// ErrNilDataset is returned when Fit is called without a dataset.
	ErrNilDataset = errors.New("nil dataset")

	// ErrShapeMismatch is returned when sample data does not match its
	// declared shape.
	ErrShapeMismatch = dataset.ErrShapeMismatch

	// ErrInvalidDimension is returned for a non-positive dimension.
	ErrInvalidDimension = dataset.ErrInvalidDimension
)

// ClusterCountError reports a cluster count that cannot be used.
// N is -1 when the count was rejected before any data was seen.
type ClusterCountError struct {
	K int
	N int
}

func (e *ClusterCountError) Error() string {
	if e.N < 0 {
		return fmt.Sprintf("invalid cluster count: k=%d, must be at least 1", e.K)
	}
	return fmt.Sprintf("invalid cluster count: k=%d exceeds %d samples", e.K, e.N)
}

func (e *ClusterCountError) Unwrap() error { return ErrInvalidClusterCount }
