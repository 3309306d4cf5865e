// Package tsp - distance cache.
//
// A DistanceMatrix is built exactly once per run, in O(n²) Euclidean
// evaluations, and never mutated afterwards. Every tour length computed by
// the engines reads it; nothing recomputes geometry inside the hot loops.
package tsp

import (
	"math"

	"github.com/katalvlaran/startour/geom"
	"github.com/katalvlaran/startour/matrix"
)

// DistanceMatrix is the symmetric, zero-diagonal n×n matrix of pairwise
// Euclidean distances. It is read-only once constructed and safe for
// concurrent readers.
type DistanceMatrix struct {
	n    int
	d    *matrix.Dense
	rows [][]float64 // row views into d, for allocation-free hot-path reads
}

// NewDistanceMatrix computes all pairwise distances of points.
// Only the upper triangle is evaluated; the lower triangle is mirrored, so
// dist[i][j] == dist[j][i] holds bit-for-bit.
//
// Errors: ErrNoPoints for an empty slice, ErrNonFinite for NaN/Inf coordinates.
//
// Complexity: O(n²) time and memory.
func NewDistanceMatrix(points []geom.Point) (*DistanceMatrix, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !finitePoint(points[i]) {
			return nil, ErrNonFinite
		}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	dm := newDistanceMatrix(d)

	var w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = geom.Distance(points[i], points[j])
			if err = d.Set(i, j, w); err != nil {
				return nil, err
			}
			if err = d.Set(j, i, w); err != nil {
				return nil, err
			}
		}
	}

	return dm, nil
}

// NewDistanceMatrixFrom copies an externally built matrix after validating
// that it is square, finite, non-negative, zero on the diagonal and symmetric.
//
// Complexity: O(n²).
func NewDistanceMatrixFrom(m matrix.Matrix) (*DistanceMatrix, error) {
	n, err := validateDistMatrix(m, symTol)
	if err != nil {
		return nil, err
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	dm := newDistanceMatrix(d)

	// Mirror the upper triangle so symmetry within symTol becomes exact; the
	// diagonal is forced to zero.
	err = d.Apply(func(i, j int, _ float64) float64 {
		if i == j {
			return 0
		}
		v, _ := m.At(min(i, j), max(i, j)) // validated above
		return v
	})
	if err != nil {
		return nil, err
	}

	return dm, nil
}

// newDistanceMatrix wires the row views of an n×n Dense.
func newDistanceMatrix(d *matrix.Dense) *DistanceMatrix {
	n := d.Rows()
	rows := make([][]float64, n)

	var i int
	for i = 0; i < n; i++ {
		rows[i], _ = d.Row(i) // i is in range by construction
	}

	return &DistanceMatrix{n: n, d: d, rows: rows}
}

// N returns the number of points.
func (dm *DistanceMatrix) N() int { return dm.n }

// At returns the distance between points i and j.
// Returns ErrDimensionMismatch when an index is out of range.
//
// Complexity: O(1).
func (dm *DistanceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= dm.n || j < 0 || j >= dm.n {
		return 0, ErrDimensionMismatch
	}

	return dm.rows[i][j], nil
}

// Dense returns an independent copy of the underlying matrix.
//
// Complexity: O(n²).
func (dm *DistanceMatrix) Dense() *matrix.Dense {
	return dm.d.Clone()
}

func finitePoint(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}
