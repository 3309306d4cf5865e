package tsp

import "math/rand"

// mutate applies the configured operator to tour in place. Each trial is one
// Bernoulli draw per child at rate; position 0 (the start vertex) never moves.
func mutate(tour []int, op MutationOperator, rate float64, rng *rand.Rand) {
	switch op {
	case MutateReverse:
		if rng.Float64() < rate {
			reverseSegment(tour, rng)
		}
	case MutateAdjacentSwap:
		if rng.Float64() < rate {
			adjacentSwaps(tour, rng)
		}
	default: // MutateComposite
		if rng.Float64() < rate {
			reverseSegment(tour, rng)
		}
		if rng.Float64() < rate {
			adjacentSwaps(tour, rng)
		}
	}
}

// reverseSegment reverses tour[i..j] for random 1 <= i <= j <= n-1.
//
// Complexity: O(n).
func reverseSegment(tour []int, rng *rand.Rand) {
	n := len(tour)
	if n < 3 {
		return
	}

	i := 1 + rng.Intn(n-1)
	j := 1 + rng.Intn(n-1)
	if i > j {
		i, j = j, i
	}
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}

// adjacentSwaps swaps a random adjacent pair (s, s+1) with 1 <= s <= n-2,
// repeated 1–3 times.
//
// Complexity: O(1).
func adjacentSwaps(tour []int, rng *rand.Rand) {
	n := len(tour)
	if n < 3 {
		return
	}

	var (
		k, s   int
		rounds = 1 + rng.Intn(3)
	)
	for k = 0; k < rounds; k++ {
		s = 1 + rng.Intn(n-2)
		tour[s], tour[s+1] = tour[s+1], tour[s]
	}
}
