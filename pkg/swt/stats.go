package swt

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// median returns the median of an already-sorted slice, using the
// standard average-of-middle-two (even length) / middle-element (odd
// length) definition, matching numpy's np.median convention so the
// median-adjustment pass produces the same numbers regardless of
// runtime.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// meanAndVariance returns the mean and population variance of values,
// using gonum's Mean for the first moment rather than a hand-rolled
// accumulator.
func meanAndVariance(values []float64) (mean, variance float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) == 1 {
		return mean, 0
	}
	// Population variance (division by n), not gonum's sample (n-1)
	// Variance, so it's computed directly here.
	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	variance = sumSq / float64(len(values))
	return mean, variance
}

// medianOf copies, sorts, and returns the median of values, leaving the
// input slice untouched so callers can't accidentally depend on
// insertion order affecting a derived statistic.
func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	sort.Float64s(cp)
	return median(cp)
}
