// SPDX-License-Identifier: MIT

// impl_random.go: Cloud(n): uniform points in the cube [0, scale)³.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewPoints); an RNG is required (else ErrNeedRandSource).
//   - Draw order is x, y, z per point, points in ascending index order.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/startour/geom"
)

const methodCloud = "Cloud"

// Cloud returns a Constructor emitting n uniformly distributed points.
func Cloud(n int) Constructor {
	return func(cfg config) ([]geom.Point, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodCloud, n, ErrTooFewPoints)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodCloud, ErrNeedRandSource)
		}

		pts := make([]geom.Point, n)
		var (
			i       int
			x, y, z float64
		)
		for i = 0; i < n; i++ {
			x = cfg.rng.Float64() * cfg.scale
			y = cfg.rng.Float64() * cfg.scale
			z = cfg.rng.Float64() * cfg.scale
			pts[i].X, pts[i].Y, pts[i].Z = cfg.place(x, y, z)
		}

		return pts, nil
	}
}
