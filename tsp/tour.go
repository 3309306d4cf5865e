// Package tsp: tour utilities shared by the solvers.
//
// A tour is an open permutation of 0..n-1; the closing edge back to
// tour[0] is implicit. Helpers in this file operate purely on index
// sequences and never touch the distance matrix:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RotateToStart: cyclic shift so the tour begins at a given vertex.
//   - CopyTour: independent copy of a tour slice.
//   - identityTour: start first, remaining vertices ascending.
package tsp

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// This is the debug-mode invariant hook: every tour an engine returns passes it.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(perm), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: index %d out of range at position %d", ErrInvalidTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate %d at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a fresh copy of tour shifted so that out[0] == start.
// The cyclic order (and therefore the length) is unchanged.
//
// Errors: ErrDimensionMismatch for an empty tour, ErrStartOutOfRange when
// start does not occur in tour.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	n := len(tour)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// identityTour writes [start, 0, 1, …, n-1] (skipping start) into dst.
//
// Complexity: O(n).
func identityTour(dst []int, start int) {
	dst[0] = start

	var (
		v   int
		pos = 1
	)
	for v = 0; v < len(dst); v++ {
		if v == start {
			continue
		}
		dst[pos] = v
		pos++
	}
}

// checkTours validates a batch of tours when the debug hook is on.
func checkTours(enabled bool, n int, tours [][]int) error {
	if !enabled {
		return nil
	}

	var (
		k   int
		err error
	)
	for k = range tours {
		if err = ValidatePermutation(tours[k], n); err != nil {
			return fmt.Errorf("tour %d: %w", k, err)
		}
	}

	return nil
}
