package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/startour/tsp"
)

func TestSolveGA_ToursArePermutations(t *testing.T) {
	dist := mustDist(t, cloud(15, 21))

	for _, op := range []tsp.MutationOperator{tsp.MutateComposite, tsp.MutateReverse, tsp.MutateAdjacentSwap} {
		for _, seed := range []int64{0, 1, 7} {
			opts := fastGA(40)
			opts.Seed = seed
			opts.GA.Mutation = op
			res, err := tsp.SolveGA(dist, opts)
			require.NoError(t, err, "op=%v seed=%d", op, seed)
			requireTour(t, dist, res, 0)
			assert.Equal(t, tsp.Genetic, res.Algo)
			assert.Equal(t, 40, res.Iterations)
		}
	}
}

func TestSolveGA_StartVertexIsKept(t *testing.T) {
	dist := mustDist(t, cloud(11, 22))
	opts := fastGA(20)
	opts.StartVertex = 5

	e, err := tsp.NewEvolution(dist, opts)
	require.NoError(t, err)
	for !e.Done() {
		_, err = e.Step()
		require.NoError(t, err)
		for _, ind := range e.Population() {
			require.Equal(t, 5, ind.Tour[0])
		}
	}
	requireTour(t, dist, e.Result(), 5)
}

func TestSolveGA_Deterministic(t *testing.T) {
	dist := mustDist(t, cloud(13, 23))
	opts := fastGA(30)

	first, err := tsp.SolveGA(dist, opts)
	require.NoError(t, err)
	again, err := tsp.SolveGA(dist, opts)
	require.NoError(t, err)
	require.Equal(t, first, again)

	opts.Workers = 4
	par, err := tsp.SolveGA(dist, opts)
	require.NoError(t, err)
	require.Equal(t, first, par, "workers must not change the result")
}

func TestFindBest_MatchesLinearScan(t *testing.T) {
	dist := mustDist(t, cloud(10, 24))
	e, err := tsp.NewEvolution(dist, fastGA(15))
	require.NoError(t, err)

	for !e.Done() {
		_, err = e.Step()
		require.NoError(t, err)

		pop := e.Population()
		bi := tsp.FindBest(pop)
		for k := range pop {
			require.GreaterOrEqual(t, pop[k].Fitness, pop[bi].Fitness)
			if k < bi {
				require.Greater(t, pop[k].Fitness, pop[bi].Fitness, "ties go to the lowest index")
			}
		}
	}
}

func TestFindBest_Table(t *testing.T) {
	tests := []struct {
		name string
		fit  []float64
		want int
	}{
		{"empty", nil, -1},
		{"single", []float64{3}, 0},
		{"last", []float64{5, 4, 3}, 2},
		{"tie", []float64{2, 1, 1, 4}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pop := make(tsp.Population, len(tc.fit))
			for i, f := range tc.fit {
				pop[i].Fitness = f
			}
			assert.Equal(t, tc.want, tsp.FindBest(pop))
		})
	}
}

// TestEvolution_FitnessNeverStale re-evaluates every individual after each
// generation.
func TestEvolution_FitnessNeverStale(t *testing.T) {
	dist := mustDist(t, cloud(9, 25))
	opts := fastGA(25)
	opts.GA.MutationRate = 1

	e, err := tsp.NewEvolution(dist, opts)
	require.NoError(t, err)
	for !e.Done() {
		_, err = e.Step()
		require.NoError(t, err)
		for _, ind := range e.Population() {
			l, err := tsp.TourLength(dist, ind.Tour)
			require.NoError(t, err)
			require.InDelta(t, l, ind.Fitness, epsTiny)
		}
	}
}

func TestEvolution_ElitismKeepsPopulationBest(t *testing.T) {
	dist := mustDist(t, cloud(14, 26))
	opts := fastGA(30)
	opts.GA.Elitism = 2
	opts.GA.MutationRate = 1

	e, err := tsp.NewEvolution(dist, opts)
	require.NoError(t, err)

	prev := math.Inf(1)
	for !e.Done() {
		_, err = e.Step()
		require.NoError(t, err)
		pop := e.Population()
		cur := pop[tsp.FindBest(pop)].Fitness
		require.LessOrEqual(t, cur, prev, "generation %d lost its best", e.Generation())
		prev = cur
	}
}

func TestSolveGA_BestEverArchive(t *testing.T) {
	dist := mustDist(t, cloud(12, 27))
	opts := fastGA(30)
	opts.GA.MutationRate = 1

	e, err := tsp.NewEvolution(dist, opts)
	require.NoError(t, err)

	prev := e.BestLength()
	for !e.Done() {
		_, err = e.Step()
		require.NoError(t, err)
		require.LessOrEqual(t, e.BestLength(), prev)
		prev = e.BestLength()
	}
	res := e.Result()
	assert.InDelta(t, prev, res.Length, epsTiny)
	assert.LessOrEqual(t, res.BestIteration, res.Iterations)
}

func TestSolveGA_Progress(t *testing.T) {
	dist := mustDist(t, cloud(8, 28))
	opts := fastGA(9)
	opts.ReportEvery = 3

	var iters []int
	opts.OnProgress = func(p tsp.Progress) {
		assert.Equal(t, tsp.Genetic, p.Algo)
		assert.LessOrEqual(t, p.Best, p.IterationBest)
		iters = append(iters, p.Iteration)
	}
	_, err := tsp.SolveGA(dist, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 9}, iters)
}

func TestNewEvolution_Errors(t *testing.T) {
	dist := mustDist(t, unitSquare())

	opts := fastGA(5)
	opts.GA.PopulationSize = 1
	_, err := tsp.NewEvolution(dist, opts)
	require.ErrorIs(t, err, tsp.ErrBadPopulation)

	opts = fastGA(5)
	opts.GA.Elitism = opts.GA.PopulationSize
	_, err = tsp.NewEvolution(dist, opts)
	require.ErrorIs(t, err, tsp.ErrBadElitism)

	opts = fastGA(5)
	opts.GA.MutationRate = -0.1
	_, err = tsp.NewEvolution(dist, opts)
	require.ErrorIs(t, err, tsp.ErrBadMutationRate)

	opts = fastGA(5)
	opts.GA.Mutation = tsp.MutationOperator(9)
	_, err = tsp.NewEvolution(dist, opts)
	require.ErrorIs(t, err, tsp.ErrBadMutationOperator)
}
