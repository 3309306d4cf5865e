// SPDX-License-Identifier: MIT

// impl_solids.go: Grid(nx, ny, nz) and Sphere(n).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/startour/geom"
)

const (
	methodGrid   = "Grid"
	methodSphere = "Sphere"
)

// Grid returns a Constructor emitting an nx×ny×nz lattice with spacing scale,
// x varying fastest.
//
// Complexity: O(nx·ny·nz).
func Grid(nx, ny, nz int) Constructor {
	return func(cfg config) ([]geom.Point, error) {
		if nx < 1 || ny < 1 || nz < 1 {
			return nil, fmt.Errorf("%s: %dx%dx%d: %w", methodGrid, nx, ny, nz, ErrTooFewPoints)
		}

		pts := make([]geom.Point, 0, nx*ny*nz)
		var (
			i, j, k int
			p       geom.Point
		)
		for k = 0; k < nz; k++ {
			for j = 0; j < ny; j++ {
				for i = 0; i < nx; i++ {
					p.X, p.Y, p.Z = cfg.place(float64(i)*cfg.scale, float64(j)*cfg.scale, float64(k)*cfg.scale)
					pts = append(pts, p)
				}
			}
		}

		return pts, nil
	}
}

// Sphere returns a Constructor emitting n near-uniform points on a sphere of
// radius scale (golden-angle spiral from the north pole down).
//
// Complexity: O(n).
func Sphere(n int) Constructor {
	return func(cfg config) ([]geom.Point, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodSphere, n, ErrTooFewPoints)
		}

		golden := math.Pi * (3 - math.Sqrt(5))
		pts := make([]geom.Point, n)
		var (
			i       int
			y, r    float64
			th      float64
			x, z    float64
			divisor = float64(n - 1)
		)
		if n == 1 {
			divisor = 1
		}
		for i = 0; i < n; i++ {
			y = 1 - 2*float64(i)/divisor
			r = math.Sqrt(math.Max(0, 1-y*y))
			th = golden * float64(i)
			x = math.Cos(th) * r
			z = math.Sin(th) * r
			pts[i].X, pts[i].Y, pts[i].Z = cfg.place(x*cfg.scale, y*cfg.scale, z*cfg.scale)
		}

		return pts, nil
	}
}
