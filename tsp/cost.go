// Package tsp: tour evaluator shared by every solver.
//
// TourLength is the checked public entry point; tourLength is the unchecked
// hot-path variant the engines call once a tour is known to be well formed.
//
// Complexity:
//   - O(n) time for a tour of n vertices, O(1) extra space.
package tsp

import "math"

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns the cyclic length of tour: the sum of consecutive
// distances plus the closing edge from the last vertex back to the first.
//
// Contract:
//   - len(tour) == dist.N() and every index lies in [0, n).
//   - The permutation property is not re-checked here; use ValidatePermutation.
//
// Errors: ErrNoPoints (nil matrix), ErrDimensionMismatch (length or index).
//
// Complexity: O(n).
func TourLength(dist *DistanceMatrix, tour []int) (float64, error) {
	if dist == nil {
		return 0, ErrNoPoints
	}
	if len(tour) != dist.n {
		return 0, ErrDimensionMismatch
	}

	var (
		i int
		v int
	)
	for i = 0; i < len(tour); i++ {
		v = tour[i]
		if v < 0 || v >= dist.n {
			return 0, ErrDimensionMismatch
		}
	}

	return round1e9(tourLength(dist.rows, tour)), nil
}

// tourLength sums the closed cycle over pre-validated row views.
// An empty tour has length 0; a single vertex closes onto itself (0).
//
// Complexity: O(n).
func tourLength(rows [][]float64, tour []int) float64 {
	n := len(tour)
	if n == 0 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += rows[tour[i]][tour[i+1]]
	}
	sum += rows[tour[n-1]][tour[0]] // close the cycle

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps reported lengths stable across platforms without affecting
// which tour is considered best (comparisons use raw sums).
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
