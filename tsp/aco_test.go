package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/startour/matrix"
	"github.com/katalvlaran/startour/tsp"
)

func TestSolveACO_ToursArePermutations(t *testing.T) {
	dist := mustDist(t, cloud(15, 2))

	for _, seed := range []int64{0, 1, 2, 3, 99} {
		opts := fastACO(20)
		opts.Seed = seed
		res, err := tsp.SolveACO(dist, opts)
		require.NoError(t, err, "seed %d", seed)
		requireTour(t, dist, res, 0)
		assert.Equal(t, tsp.AntColony, res.Algo)
		assert.Equal(t, 20, res.Iterations)
		assert.Equal(t, tsp.StopMaxIterations, res.Stopped)
		assert.GreaterOrEqual(t, res.BestIteration, 1)
		assert.LessOrEqual(t, res.BestIteration, res.Iterations)
	}
}

func TestSolveACO_StartVertexAndRandomStart(t *testing.T) {
	dist := mustDist(t, cloud(10, 4))

	opts := fastACO(15)
	opts.StartVertex = 6
	res, err := tsp.SolveACO(dist, opts)
	require.NoError(t, err)
	requireTour(t, dist, res, 6)

	opts.ACO.RandomStart = true
	res, err = tsp.SolveACO(dist, opts)
	require.NoError(t, err)
	requireTour(t, dist, res, 6)
}

func TestSolveACO_Deterministic(t *testing.T) {
	dist := mustDist(t, cloud(14, 5))
	opts := fastACO(25)

	first, err := tsp.SolveACO(dist, opts)
	require.NoError(t, err)
	for k := 0; k < 3; k++ {
		again, err := tsp.SolveACO(dist, opts)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSolveACO_WorkersDoNotChangeResult(t *testing.T) {
	dist := mustDist(t, cloud(16, 6))
	opts := fastACO(15)

	serial, err := tsp.SolveACO(dist, opts)
	require.NoError(t, err)
	for _, w := range []int{2, 4, 16} {
		opts.Workers = w
		par, err := tsp.SolveACO(dist, opts)
		require.NoError(t, err)
		require.Equal(t, serial, par, "workers=%d", w)
	}
}

// TestColony_PheromoneStaysNonNegative steps a colony by hand and inspects the
// pheromone matrix after every update.
func TestColony_PheromoneStaysNonNegative(t *testing.T) {
	dist := mustDist(t, cloud(9, 8))

	for _, rho := range []float64{0.01, 0.5, 0.99, 1} {
		opts := fastACO(30)
		opts.ACO.Rho = rho
		c, err := tsp.NewColony(dist, opts)
		require.NoError(t, err)
		assert.True(t, math.IsInf(c.BestLength(), 1))

		var done bool
		for !done {
			done, err = c.Step()
			require.NoError(t, err)
			require.NoError(t, matrix.ValidateNonNegative(c.Pheromone()), "rho=%v iter=%d", rho, c.Iteration())
		}
		assert.Equal(t, 30, c.Iteration())
		assert.True(t, c.Done())

		done, err = c.Step()
		require.NoError(t, err)
		assert.True(t, done, "steps after termination are no-ops")
		assert.Equal(t, 30, c.Iteration())
	}
}

func TestColony_BestIsMonotone(t *testing.T) {
	dist := mustDist(t, cloud(12, 12))
	c, err := tsp.NewColony(dist, fastACO(40))
	require.NoError(t, err)

	prev := math.Inf(1)
	for !c.Done() {
		_, err = c.Step()
		require.NoError(t, err)
		require.LessOrEqual(t, c.BestLength(), prev)
		prev = c.BestLength()
	}
	assert.InDelta(t, prev, c.Result().Length, epsTiny)
}

// TestSolveACO_ZeroPheromoneUsesFallback: with no initial pheromone and no
// deposit the roulette never has mass, so every ant walks the index order.
func TestSolveACO_ZeroPheromoneUsesFallback(t *testing.T) {
	dist := mustDist(t, cloud(8, 13))
	opts := fastACO(5)
	opts.ACO.InitialPheromone = 0
	opts.ACO.Q = 0

	res, err := tsp.SolveACO(dist, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, res.Tour)
}

func TestSolveACO_Progress(t *testing.T) {
	dist := mustDist(t, cloud(10, 14))
	opts := fastACO(50)
	opts.ReportEvery = 10

	var got []tsp.Progress
	opts.OnProgress = func(p tsp.Progress) { got = append(got, p) }

	res, err := tsp.SolveACO(dist, opts)
	require.NoError(t, err)
	require.Len(t, got, 5)

	var k int
	for k = range got {
		assert.Equal(t, tsp.AntColony, got[k].Algo)
		assert.Equal(t, (k+1)*10, got[k].Iteration)
		assert.LessOrEqual(t, got[k].Best, got[k].IterationBest)
		assert.LessOrEqual(t, got[k].IterationBest, got[k].Mean+epsTiny)
		assert.GreaterOrEqual(t, got[k].StdDev, 0.0)
		assert.GreaterOrEqual(t, got[k].PheromoneMin, 0.0)
		assert.Greater(t, got[k].PheromoneMax, got[k].PheromoneMin, "deposits separate the trails")
		if k > 0 {
			assert.LessOrEqual(t, got[k].Best, got[k-1].Best)
		}
	}
	assert.Equal(t, res.Length, got[len(got)-1].Best)
}

func TestSolveACO_TargetStopsEarly(t *testing.T) {
	dist := mustDist(t, unitSquare())
	opts := fastACO(500)
	opts.TargetLength = 4.5

	res, err := tsp.SolveACO(dist, opts)
	require.NoError(t, err)
	assert.Equal(t, tsp.StopTarget, res.Stopped)
	assert.Less(t, res.Length, 4.5)
	assert.Less(t, res.Iterations, 500)
}

func TestSolveACO_ExplicitAntCount(t *testing.T) {
	dist := mustDist(t, cloud(20, 15))
	opts := fastACO(10)
	opts.ACO.Ants = 3

	res, err := tsp.SolveACO(dist, opts)
	require.NoError(t, err)
	requireTour(t, dist, res, 0)
}

func TestSolveACO_CoincidentPoints(t *testing.T) {
	pts := cloud(5, 16)
	pts = append(pts, pts[0], pts[0]) // zero distances
	dist := mustDist(t, pts)

	res, err := tsp.SolveACO(dist, fastACO(10))
	require.NoError(t, err)
	requireTour(t, dist, res, 0)
	assert.False(t, math.IsNaN(res.Length))
}

func TestNewColony_Errors(t *testing.T) {
	dist := mustDist(t, unitSquare())

	_, err := tsp.NewColony(nil, fastACO(1))
	require.ErrorIs(t, err, tsp.ErrNoPoints)

	opts := fastACO(1)
	opts.StartVertex = 4
	_, err = tsp.NewColony(dist, opts)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	opts = fastACO(0)
	_, err = tsp.NewColony(dist, opts)
	require.ErrorIs(t, err, tsp.ErrBadIterations)

	opts = fastACO(1)
	opts.ACO.Rho = 1.5
	_, err = tsp.NewColony(dist, opts)
	require.ErrorIs(t, err, tsp.ErrBadEvaporation)
}
