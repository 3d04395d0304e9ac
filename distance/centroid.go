package distance

// Centroid returns the elementwise arithmetic mean of samples.
//
// All samples must share one length. An empty input has no mean: Centroid
// returns (nil, false) and the caller decides what the cluster becomes.
func Centroid(samples [][]float32) ([]float32, bool) {
	if len(samples) == 0 {
		return nil, false
	}
	dst := make([]float32, len(samples[0]))
	MeanInto(dst, samples)
	return dst, true
}

// MeanInto writes the mean of samples into dst and reports whether samples
// was non-empty. dst is left untouched for an empty input.
//
// Sums are accumulated in float64, so the mean of n copies of x is exactly x.
func MeanInto(dst []float32, samples [][]float32) bool {
	if len(samples) == 0 {
		return false
	}
	acc := make([]float64, len(dst))
	for _, s := range samples {
		s = s[:len(dst)]
		for i, v := range s {
			acc[i] += float64(v)
		}
	}
	n := float64(len(samples))
	for i, v := range acc {
		dst[i] = float32(v / n)
	}
	return true
}
