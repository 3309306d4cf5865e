// SPDX-License-Identifier: MIT

// impl_curves.go: Circle(n) and Helix(n, turns).
//
// Both are deterministic without an RNG (unless jitter is set). For Circle the
// index order is the optimal tour, which makes it a convenient fixture with a
// known optimum: n · 2 · scale · sin(π/n).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/startour/geom"
)

const (
	methodCircle   = "Circle"
	methodHelix    = "Helix"
	minCircleNodes = 3
)

// Circle returns a Constructor emitting the vertices of a regular n-gon of
// radius scale in the z=0 plane, counter-clockwise from (scale, 0, 0).
func Circle(n int) Constructor {
	return func(cfg config) ([]geom.Point, error) {
		if n < minCircleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCircle, n, minCircleNodes, ErrTooFewPoints)
		}

		pts := make([]geom.Point, n)
		var (
			i  int
			th float64
		)
		for i = 0; i < n; i++ {
			th = 2 * math.Pi * float64(i) / float64(n)
			pts[i].X, pts[i].Y, pts[i].Z = cfg.place(cfg.scale*math.Cos(th), cfg.scale*math.Sin(th), 0)
		}

		return pts, nil
	}
}

// Helix returns a Constructor emitting n points evenly spread over `turns`
// revolutions of a helix with radius scale, rising scale per turn.
func Helix(n, turns int) Constructor {
	return func(cfg config) ([]geom.Point, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodHelix, n, ErrTooFewPoints)
		}
		if turns < 1 {
			return nil, fmt.Errorf("%s: turns=%d < 1: %w", methodHelix, turns, ErrTooFewPoints)
		}

		pts := make([]geom.Point, n)
		var (
			i    int
			frac float64
			th   float64
		)
		for i = 0; i < n; i++ {
			frac = float64(i) / float64(n)
			th = 2 * math.Pi * float64(turns) * frac
			pts[i].X, pts[i].Y, pts[i].Z = cfg.place(
				cfg.scale*math.Cos(th),
				cfg.scale*math.Sin(th),
				cfg.scale*float64(turns)*frac,
			)
		}

		return pts, nil
	}
}
