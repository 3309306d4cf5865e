// SPDX-License-Identifier: MIT

// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable config (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical points.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/startour/geom"
)

// Constructor emits points using the resolved config. Constructors validate
// their parameters early and return sentinel errors.
type Constructor func(cfg config) ([]geom.Point, error)

// Build resolves opts and concatenates the output of every constructor.
// IDs are reassigned 0..n-1 in emission order. Any constructor error is
// wrapped with "Build: %w" and returned immediately.
//
// Complexity: O(len(opts)) + Σ cost of each constructor.
func Build(opts []Option, cons ...Constructor) ([]geom.Point, error) {
	if len(cons) == 0 {
		return nil, ErrNoConstructor
	}
	cfg := newConfig(opts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return nil, fmt.Errorf("Build: jitter: %w", ErrNeedRandSource)
	}

	var out []geom.Point
	for _, con := range cons {
		pts, err := con(cfg)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		out = append(out, pts...)
	}
	for i := range out {
		out[i].ID = i
	}

	return out, nil
}
