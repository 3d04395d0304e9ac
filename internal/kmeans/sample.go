package kmeans

import "math/rand"

// SampleDistinct returns k distinct indices drawn uniformly from [0, n),
// in draw order.
//
// It runs a partial Fisher-Yates shuffle over a virtual identity
// permutation, so memory is O(k) regardless of n. It panics unless
// 0 <= k <= n.
func SampleDistinct(rng *rand.Rand, n, k int) []int {
	if k < 0 || k > n {
		panic("kmeans: sample size out of range")
	}

	// swapped[i] holds the value at position i when it differs from i.
	swapped := make(map[int]int, 2*k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	out := make([]int, k)
	for i := range k {
		j := i + rng.Intn(n-i)
		out[i] = at(j)
		swapped[j] = at(i)
	}
	return out
}
