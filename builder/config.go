// SPDX-License-Identifier: MIT

// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng    = nil        (pure/deterministic unless seeded)
//   - scale  = 1.0
//   - center = origin
//   - jitter = 0

package builder

import "math/rand"

const defaultScale = 1.0

// config aggregates all knobs used by constructors. It is passed by value.
type config struct {
	rng    *rand.Rand
	scale  float64
	center [3]float64
	jitter float64
}

// newConfig applies opts in order over the defaults (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{scale: defaultScale}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// place translates (x, y, z) by the configured center and adds jitter.
// Callers have already checked that jitter > 0 implies rng != nil.
func (c config) place(x, y, z float64) (float64, float64, float64) {
	if c.jitter > 0 {
		x += c.rng.NormFloat64() * c.jitter
		y += c.rng.NormFloat64() * c.jitter
		z += c.rng.NormFloat64() * c.jitter
	}

	return x + c.center[0], y + c.center[1], z + c.center[2]
}
