// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: deterministic point sets, fast engine options and
// tour assertions.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/startour/geom"
	"github.com/katalvlaran/startour/tsp"
)

const (
	// epsTiny is the tolerance for lengths that are exact up to rounding.
	epsTiny = 1e-9

	// seedDet is a fixed non-zero seed used by determinism tests.
	seedDet = int64(42)
)

// unitSquare returns the four corners of the unit square in the z=0 plane,
// listed so that index order is already the optimal tour (perimeter 4).
func unitSquare() []geom.Point {
	return []geom.Point{
		{ID: 0, X: 0, Y: 0, Z: 0},
		{ID: 1, X: 1, Y: 0, Z: 0},
		{ID: 2, X: 1, Y: 1, Z: 0},
		{ID: 3, X: 0, Y: 1, Z: 0},
	}
}

// shuffledSquare lists the unit square corners in a crossing order, so the
// identity tour is not optimal.
func shuffledSquare() []geom.Point {
	return []geom.Point{
		{ID: 0, X: 0, Y: 0, Z: 0},
		{ID: 1, X: 1, Y: 1, Z: 0},
		{ID: 2, X: 1, Y: 0, Z: 0},
		{ID: 3, X: 0, Y: 1, Z: 0},
	}
}

// cloud returns n points drawn uniformly from [0,100)³ with a fixed seed.
func cloud(n int, seed int64) []geom.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)

	var i int
	for i = 0; i < n; i++ {
		pts[i] = geom.Point{ID: i, X: rng.Float64() * 100, Y: rng.Float64() * 100, Z: rng.Float64() * 100}
	}

	return pts
}

// circle returns n points on a planar circle of radius 10; index order is the
// optimal tour, and the only tour without crossing edges.
func circle(n int) []geom.Point {
	pts := make([]geom.Point, n)

	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Point{ID: i, X: 10 * math.Cos(th), Y: 10 * math.Sin(th)}
	}

	return pts
}

// mustDist builds the distance cache or fails the test.
func mustDist(t testing.TB, pts []geom.Point) *tsp.DistanceMatrix {
	t.Helper()
	dist, err := tsp.NewDistanceMatrix(pts)
	require.NoError(t, err)

	return dist
}

// fastACO returns colony options small enough for unit tests.
func fastACO(iters int) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.AntColony
	opts.MaxIterations = iters
	opts.Seed = seedDet
	opts.CheckInvariants = true

	return opts
}

// fastGA returns genetic options small enough for unit tests.
func fastGA(gens int) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Genetic
	opts.MaxIterations = gens
	opts.Seed = seedDet
	opts.CheckInvariants = true
	opts.GA.MutationRate = 0.2

	return opts
}

// requireTour asserts that res carries a valid permutation starting at start
// whose reported length matches an independent evaluation.
func requireTour(t testing.TB, dist *tsp.DistanceMatrix, res tsp.Result, start int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(res.Tour, dist.N()))
	require.Equal(t, start, res.Tour[0], "tour must begin at the start vertex")

	l, err := tsp.TourLength(dist, res.Tour)
	require.NoError(t, err)
	require.InDelta(t, l, res.Length, epsTiny)
	require.GreaterOrEqual(t, res.Length, 0.0)
}
