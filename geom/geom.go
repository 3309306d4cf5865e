// Package geom defines the 3D point type and the Euclidean metric the
// solvers run on.
//
// Points are immutable values: loaders assign the ID, solvers only read
// coordinates. Distance is a pure function with no caching; the tsp package
// computes it exactly once per pair when it builds its distance matrix.
package geom

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Point is a star (or any waypoint) in 3D space.
// ID is assigned by the loader (0- or 1-based sequential index) and is
// stable for the whole run; it is not part of the input file.
type Point struct {
	ID      int
	X, Y, Z float64
}

// Coords returns the coordinates as a fixed-size array in (x, y, z) order.
func (p Point) Coords() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// String renders the point the way the progress reports print it.
func (p Point) String() string {
	return fmt.Sprintf("ID: %d, X: %.6f, Y: %.6f, Z: %.6f", p.ID, p.X, p.Y, p.Z)
}

// Distance returns the Euclidean (L2) distance between a and b.
// The result is symmetric, non-negative and zero for coincident points.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	ca, cb := a.Coords(), b.Coords()

	return floats.Distance(ca[:], cb[:], 2)
}
