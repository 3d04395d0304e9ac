package kmeans

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hupe1980/lloyd/distance"
)

// EmptyPolicy decides what happens to a centroid that no sample chose.
type EmptyPolicy uint8

const (
	// EmptyKeep leaves the centroid where it was in the previous pass.
	EmptyKeep EmptyPolicy = iota
	// EmptyResample moves the centroid onto a uniformly drawn sample.
	EmptyResample
)

func (p EmptyPolicy) String() string {
	switch p {
	case EmptyKeep:
		return "keep"
	case EmptyResample:
		return "resample"
	default:
		return fmt.Sprintf("EmptyPolicy(%d)", uint8(p))
	}
}

// ParseEmptyPolicy parses "keep" or "resample".
func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep", "":
		return EmptyKeep, nil
	case "resample":
		return EmptyResample, nil
	default:
		return 0, fmt.Errorf("unknown empty cluster policy %q", s)
	}
}

// Update recomputes k centroids as the mean of their members and returns
// them in a fresh flat buffer, together with the member count of each
// cluster. Members are averaged in dataset order.
//
// Clusters without members are handled by policy: EmptyKeep copies the
// centroid from prev, EmptyResample copies a sample drawn with rng.
func Update(data []float32, dim int, labels []int, k int, prev []float32, policy EmptyPolicy, rng *rand.Rand) ([]float32, []int) {
	counts := make([]int, k)
	for _, c := range labels {
		counts[c]++
	}

	// Group sample views by cluster with a counting sort; order within a
	// cluster follows the dataset.
	offsets := make([]int, k+1)
	for c, cnt := range counts {
		offsets[c+1] = offsets[c] + cnt
	}
	members := make([][]float32, len(labels))
	next := append([]int(nil), offsets[:k]...)
	for i, c := range labels {
		lo, hi := i*dim, (i+1)*dim
		members[next[c]] = data[lo:hi:hi]
		next[c]++
	}

	n := len(labels)
	centroids := make([]float32, k*dim)
	for c := range k {
		dst := centroids[c*dim : (c+1)*dim]
		if distance.MeanInto(dst, members[offsets[c]:offsets[c+1]]) {
			continue
		}
		switch policy {
		case EmptyResample:
			i := rng.Intn(n)
			copy(dst, data[i*dim:(i+1)*dim])
		default:
			copy(dst, prev[c*dim:(c+1)*dim])
		}
	}
	return centroids, counts
}

// Empty returns the indices of clusters with a zero count.
func Empty(counts []int) []int {
	var out []int
	for c, n := range counts {
		if n == 0 {
			out = append(out, c)
		}
	}
	return out
}
