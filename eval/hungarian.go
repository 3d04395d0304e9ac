package eval

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxWeightMatching solves the assignment problem on w, maximizing the
// total weight of a one-to-one row to column matching. The result maps
// every row to its column, or -1 for rows without one.
//
// The matrix is padded to square with zero weights and solved as a
// minimum cost problem (Hungarian algorithm with potentials, O(n^3)).
func maxWeightMatching(w mat.Matrix) []int {
	rows, cols := w.Dims()
	n := max(rows, cols)

	maxW := 0.0
	for i := range rows {
		for j := range cols {
			maxW = math.Max(maxW, w.At(i, j))
		}
	}
	cost := func(i, j int) float64 {
		if i < rows && j < cols {
			return maxW - w.At(i, j)
		}
		return maxW
	}

	// 1-based potentials; p[j] is the row matched to column j.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		for p[j0] != 0 {
			used[j0] = true
			i0, delta, j1 := p[j0], math.Inf(1), 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	match := make([]int, rows)
	for i := range match {
		match[i] = -1
	}
	for j := 1; j <= n; j++ {
		i := p[j] - 1
		if i < rows && j-1 < cols {
			match[i] = j - 1
		}
	}
	return match
}
