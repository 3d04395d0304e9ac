package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is wrapped by every conversion failure.
var ErrOutOfRange = errors.New("value out of range")

// IntToUint32 converts a non-negative int to uint32.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	return uint32(v), nil
}

// IntToUint64 converts a non-negative int to uint64.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOutOfRange, v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts v to int.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d does not fit int", ErrOutOfRange, v)
	}
	return int(v), nil
}

// Float32ToIndex converts a float that encodes a class or cluster id.
// It must be finite, non-negative and integral.
func Float32ToIndex(v float32) (int, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v is not a valid index", ErrOutOfRange, v)
	}
	if f > float64(math.MaxInt32) {
		return 0, fmt.Errorf("%w: %v is too large", ErrOutOfRange, v)
	}
	return int(f), nil
}
