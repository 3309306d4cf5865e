// Package tsp - 2-opt local search polish.
//
// TwoOpt performs deterministic first-improvement 2-opt on a tour:
// reversing tour[i..k] replaces edges (a,b),(c,d) with (a,c),(b,d), where
// a=T[i−1], b=T[i], c=T[k], d=T[k+1 mod n], and
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d).
//
// A move is applied when Δ < −twoOptEps. Position 0 is never moved, so the
// start vertex survives the polish.
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - O(1) per candidate check; O(k−i) per accepted move.
//   - The scan restarts after every accepted move.
//
// Complexity:
//   - One pass: O(n²) candidate checks.
//   - Overall: O(moves · n²) time, O(n) extra space.
package tsp

// twoOptEps guards against accepting moves whose gain is pure rounding noise.
const twoOptEps = 1e-12

// TwoOpt improves tour with first-improvement 2-opt until no improving move
// remains or maxMoves moves were accepted (maxMoves <= 0 means unlimited).
// Returns the improved tour (a fresh copy, same start) and its rounded length.
//
// Errors: ErrNoPoints for a nil matrix, ErrInvalidTour when tour is not a
// permutation of 0..n-1.
func TwoOpt(dist *DistanceMatrix, tour []int, maxMoves int) ([]int, float64, error) {
	if dist == nil {
		return nil, 0, ErrNoPoints
	}
	n := dist.n
	if err := ValidatePermutation(tour, n); err != nil {
		return nil, 0, err
	}

	cur := CopyTour(tour)
	if n < 4 { // every tour of three or fewer points has the same length
		return cur, round1e9(tourLength(dist.rows, cur)), nil
	}
	w := dist.rows

	var (
		accepted   int
		improved   = true
		i, k       int
		a, b, c, d int
		delta      float64
	)
	for improved {
		improved = false

	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[(k+1)%n]

				delta = (w[a][c] + w[b][d]) - (w[a][b] + w[c][d])
				if delta >= -twoOptEps {
					continue
				}

				reverseRange(cur, i, k)
				accepted++
				improved = true
				if maxMoves > 0 && accepted >= maxMoves {
					improved = false
				}
				break scan
			}
		}
	}

	return cur, round1e9(tourLength(dist.rows, cur)), nil
}

// reverseRange reverses t[i..k] in place (inclusive bounds, i <= k).
func reverseRange(t []int, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
