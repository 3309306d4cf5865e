package pointio

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTour reads a tour of n points written as indices separated by
// whitespace and/or commas, optionally wrapped in brackets:
//
//	"0 5 10 3"   "[0, 5, 10, 3]"
//
// A closed form that repeats the first index at the end is accepted and the
// repetition dropped. The result must be a permutation of 0..n-1.
//
// Errors: ErrBadTour, wrapped with the offending detail.
//
// Complexity: O(len(s) + n).
func ParseTour(s string, n int) ([]int, error) {
	return parseTour(s, n, 0)
}

// ParseTourOneBased is ParseTour for indices written 1..n; the result is
// shifted to 0..n-1.
func ParseTourOneBased(s string, n int) ([]int, error) {
	return parseTour(s, n, 1)
}

func parseTour(s string, n, base int) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	tour := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an index", ErrBadTour, f)
		}
		tour = append(tour, v-base)
	}
	if len(tour) == n+1 && n > 0 && tour[0] == tour[n] {
		tour = tour[:n]
	}
	if len(tour) != n {
		return nil, fmt.Errorf("%w: %d indices for %d points", ErrBadTour, len(tour), n)
	}

	seen := make([]bool, n)
	for i, v := range tour {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: index %d out of range at position %d", ErrBadTour, v+base, i)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: duplicate %d at position %d", ErrBadTour, v+base, i)
		}
		seen[v] = true
	}

	return tour, nil
}
