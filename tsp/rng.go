// Package tsp - RNG utilities shared by the stochastic solvers.
//
// Goals:
//   - Determinism: same seed ⇒ identical results, whatever Options.Workers is.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each ant slot / population slot owns
//     one stream derived with deriveRNG at engine start, so parallel workers never
//     share a generator and the draw sequence of a slot does not depend on
//     scheduling.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// EffectiveSeed returns the seed a run actually uses: seed itself, or
// defaultRNGSeed when seed==0. Two options values produce the same random
// streams exactly when their effective seeds are equal.
//
// Complexity: O(1).
func EffectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(EffectiveSeed(seed)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer (Vigna 2014 constants), so neighbouring stream ids
// produce uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once so repeated ids still differ.
// If base==nil, defaultRNGSeed is used as the parent.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// deriveStreams returns k per-slot streams, derived in slot order from base.
// Call once at engine start, never inside the iteration loop.
//
// Complexity: O(k).
func deriveStreams(base *rand.Rand, k int) []*rand.Rand {
	out := make([]*rand.Rand, k)

	var i int
	for i = 0; i < k; i++ {
		out[i] = deriveRNG(base, uint64(i))
	}

	return out
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
