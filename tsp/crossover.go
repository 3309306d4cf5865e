// Package tsp - ordered crossover (OX) for permutation chromosomes.
//
// The child keeps parent1's genes at positions [start..end] verbatim. The
// remaining positions are filled left to right, skipping over the copied
// block, with parent2's genes in parent2's order, omitting genes already
// present in the block. Every gene is written exactly once, so the child is a
// permutation whenever both parents are.
//
// With the start vertex at position 0 in both parents and start >= 1, the
// first free position receives parent2[0], so the start vertex is preserved.
package tsp

import "fmt"

// OrderedCrossover returns the OX child of p1 and p2 for cut points
// 0 <= start <= end < n.
//
// Errors: ErrDimensionMismatch (length or cut points), ErrInvalidTour when a
// parent is not a permutation.
//
// Complexity: O(n) time, O(n) space.
func OrderedCrossover(p1, p2 []int, start, end int) ([]int, error) {
	n := len(p1)
	if n == 0 || len(p2) != n {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || end >= n || start > end {
		return nil, fmt.Errorf("%w: cut points [%d, %d] for n=%d", ErrDimensionMismatch, start, end, n)
	}
	if err := ValidatePermutation(p1, n); err != nil {
		return nil, fmt.Errorf("parent1: %w", err)
	}
	if err := ValidatePermutation(p2, n); err != nil {
		return nil, fmt.Errorf("parent2: %w", err)
	}

	child := make([]int, n)
	orderedCrossoverInto(child, p1, p2, start, end, make([]bool, n))

	return child, nil
}

// orderedCrossoverInto is the allocation-free core. seen is scratch of length n
// and is cleared on entry.
func orderedCrossoverInto(child, p1, p2 []int, start, end int, seen []bool) {
	var i int
	for i = range seen {
		seen[i] = false
	}
	for i = start; i <= end; i++ {
		child[i] = p1[i]
		seen[p1[i]] = true
	}

	var (
		pos  int
		gene int
	)
	for i = 0; i < len(p2); i++ {
		if pos == start {
			pos = end + 1
		}
		gene = p2[i]
		if seen[gene] {
			continue
		}
		child[pos] = gene
		pos++
	}
}
