package tsp

import "gonum.org/v1/gonum/stat"

// summarize returns the minimum, mean and sample standard deviation of xs.
// The deviation is 0 for fewer than two samples. Only computed when a
// progress snapshot is due.
func summarize(xs []float64) (lo, mean, std float64) {
	if len(xs) == 0 {
		return 0, 0, 0
	}

	lo = xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
	}
	if len(xs) < 2 {
		return lo, xs[0], 0
	}
	mean, std = stat.MeanStdDev(xs, nil)

	return lo, mean, std
}
