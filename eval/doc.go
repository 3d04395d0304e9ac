// Package eval scores a clustering against ground-truth classes.
//
// Accuracy compares labels position by position. It is only meaningful
// when cluster indices happen to coincide with class indices, which
// k-means does not guarantee: a perfect clustering with swapped indices
// scores 0.
//
// MatchedAccuracy first finds the one-to-one relabelling of clusters to
// classes that agrees with the most samples (Hungarian algorithm on the
// contingency matrix) and scores that. It is invariant to permutations of
// cluster indices.
package eval
