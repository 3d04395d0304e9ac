package eval

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrLengthMismatch is returned when the label vectors differ in length.
	ErrLengthMismatch = errors.New("label vectors differ in length")

	// ErrEmpty is returned when there is nothing to score.
	ErrEmpty = errors.New("no labels to compare")

	// ErrNegativeLabel is returned for labels below zero.
	ErrNegativeLabel = errors.New("negative label")
)

func check(predicted, truth []int) error {
	if len(predicted) != len(truth) {
		return fmt.Errorf("%w: %d predicted, %d truth", ErrLengthMismatch, len(predicted), len(truth))
	}
	if len(predicted) == 0 {
		return ErrEmpty
	}
	return nil
}

// Accuracy returns the fraction of positions where predicted equals truth.
func Accuracy(predicted, truth []int) (float64, error) {
	if err := check(predicted, truth); err != nil {
		return 0, err
	}

	hits := 0
	for i, p := range predicted {
		if p == truth[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(predicted)), nil
}

// Contingency counts co-occurrences: element (c, t) is the number of
// samples with predicted cluster c and true class t. The matrix has
// max(predicted)+1 rows and max(truth)+1 columns.
func Contingency(predicted, truth []int) (*mat.Dense, error) {
	if err := check(predicted, truth); err != nil {
		return nil, err
	}

	rows, cols := 0, 0
	for i, p := range predicted {
		t := truth[i]
		if p < 0 || t < 0 {
			return nil, fmt.Errorf("%w at index %d", ErrNegativeLabel, i)
		}
		rows = max(rows, p+1)
		cols = max(cols, t+1)
	}

	m := mat.NewDense(rows, cols, nil)
	for i, p := range predicted {
		m.Set(p, truth[i], m.At(p, truth[i])+1)
	}
	return m, nil
}

// Matching returns, for every predicted cluster, the class it is mapped to
// by the best one-to-one assignment, or -1 when the cluster is left
// unmatched (more clusters than classes).
func Matching(predicted, truth []int) ([]int, error) {
	m, err := Contingency(predicted, truth)
	if err != nil {
		return nil, err
	}
	return maxWeightMatching(m), nil
}

// MatchedAccuracy returns the accuracy of predicted after relabelling
// clusters with Matching.
func MatchedAccuracy(predicted, truth []int) (float64, error) {
	mapping, err := Matching(predicted, truth)
	if err != nil {
		return 0, err
	}
	return Accuracy(Relabel(predicted, mapping), truth)
}

// Relabel applies mapping to every label. Labels outside mapping or
// mapped to -1 become -1.
func Relabel(labels, mapping []int) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		if l >= 0 && l < len(mapping) {
			out[i] = mapping[l]
		} else {
			out[i] = -1
		}
	}
	return out
}
