// SPDX-License-Identifier: MIT

// options.go: functional options for the builder package.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// Option customizes the resolved config before any constructor runs.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithScale sets the size parameter of every shape (radius, cube side,
// lattice spacing). Panics unless s is finite and > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale needs a finite value > 0")
	}
	return func(c *config) {
		c.scale = s
	}
}

// WithCenter translates every generated point by (x, y, z).
func WithCenter(x, y, z float64) Option {
	return func(c *config) {
		c.center = [3]float64{x, y, z}
	}
}

// WithJitter adds N(0, sigma²) noise to every coordinate. Panics on negative
// or non-finite sigma; sigma > 0 requires an RNG at build time.
func WithJitter(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithJitter needs a finite sigma >= 0")
	}
	return func(c *config) {
		c.jitter = sigma
	}
}
