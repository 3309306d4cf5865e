package sweep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/startour/builder"
	"github.com/katalvlaran/startour/geom"
	"github.com/katalvlaran/startour/sweep"
	"github.com/katalvlaran/startour/tsp"
)

func squareDist(t *testing.T) *tsp.DistanceMatrix {
	t.Helper()
	dist, err := tsp.NewDistanceMatrix([]geom.Point{
		{ID: 0, X: 0, Y: 0, Z: 0},
		{ID: 1, X: 1, Y: 1, Z: 0},
		{ID: 2, X: 1, Y: 0, Z: 0},
		{ID: 3, X: 0, Y: 1, Z: 0},
		{ID: 4, X: 0.5, Y: 0.5, Z: 1},
	})
	require.NoError(t, err)

	return dist
}

func quickBase() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.MaxIterations = 10
	opts.Seed = 100

	return opts
}

func TestGrid_ExpandOrderAndSeeds(t *testing.T) {
	base := quickBase()
	called := false
	base.OnProgress = func(tsp.Progress) { called = true }
	base.ReportEvery = 1

	g := sweep.Grid{Alpha: []float64{1, 2}, Rho: []float64{0.1, 0.5, 0.9}, Replications: 2}
	assert.Equal(t, 6, g.Points())
	assert.Equal(t, 12, g.Size())

	runs, err := g.Expand(base)
	require.NoError(t, err)
	require.Len(t, runs, 12)

	// Replications are consecutive and only differ in the seed.
	assert.Equal(t, int64(100), runs[0].Seed)
	assert.Equal(t, int64(101), runs[1].Seed)
	assert.Equal(t, runs[0].ACO, runs[1].ACO)

	// Rho varies faster than Alpha.
	assert.Equal(t, 1.0, runs[0].ACO.Alpha)
	assert.Equal(t, 0.5, runs[2].ACO.Rho)
	assert.Equal(t, 2.0, runs[6].ACO.Alpha)
	assert.Equal(t, 0.1, runs[6].ACO.Rho)

	// Untouched axes keep the base values; callbacks are not copied.
	for _, o := range runs {
		assert.Equal(t, base.ACO.Beta, o.ACO.Beta)
		assert.Equal(t, base.GA, o.GA)
		assert.Equal(t, base.MaxIterations, o.MaxIterations)
		assert.Nil(t, o.OnProgress)
	}
	assert.False(t, called)

	_, err = sweep.Grid{Replications: -1}.Expand(base)
	require.ErrorIs(t, err, sweep.ErrBadReplications)
}

func TestGrid_ReplicationSeedsNeverAliasDefault(t *testing.T) {
	base := quickBase()
	base.Seed = 0
	runs, err := sweep.Grid{Replications: 3}.Expand(base)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{runs[0].Seed, runs[1].Seed, runs[2].Seed})

	// Counting up from a negative base steps over 0.
	base.Seed = -2
	runs, err = sweep.Grid{Replications: 4}.Expand(base)
	require.NoError(t, err)
	seen := make(map[int64]bool)
	for _, o := range runs {
		eff := tsp.EffectiveSeed(o.Seed)
		assert.False(t, seen[eff], "seed %d reused", eff)
		seen[eff] = true
	}
	assert.Equal(t, []int64{-2, -1, 1, 2}, []int64{runs[0].Seed, runs[1].Seed, runs[2].Seed, runs[3].Seed})
}

func TestRun_ZeroSeedReplicationsDiffer(t *testing.T) {
	pts, err := builder.Build([]builder.Option{builder.WithSeed(11), builder.WithScale(10)}, builder.Cloud(25))
	require.NoError(t, err)
	dist, err := tsp.NewDistanceMatrix(pts)
	require.NoError(t, err)

	base := tsp.DefaultOptions()
	base.MaxIterations = 5
	out, err := sweep.Run(context.Background(), dist, base, sweep.Grid{Replications: 3})
	require.NoError(t, err)
	require.Len(t, out, 3)

	byRep := make(map[int][]int, 3)
	for _, o := range out {
		byRep[o.Replication] = o.Result.Tour
	}
	assert.NotEqual(t, byRep[0], byRep[1])
	assert.NotEqual(t, byRep[1], byRep[2])
}

func TestGrid_EmptyIsBase(t *testing.T) {
	base := quickBase()
	runs, err := sweep.Grid{}.Expand(base)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, base.ACO, runs[0].ACO)
	assert.Equal(t, base.Seed, runs[0].Seed)
}

func TestRun_SortedAndDeterministic(t *testing.T) {
	dist := squareDist(t)
	base := quickBase()
	g := sweep.Grid{Beta: []float64{0, 2}, Replications: 3}

	a, err := sweep.Run(context.Background(), dist, base, g)
	require.NoError(t, err)
	require.Len(t, a, 6)
	for i := 1; i < len(a); i++ {
		assert.LessOrEqual(t, a[i-1].Result.Length, a[i].Result.Length)
	}
	for _, o := range a {
		require.NoError(t, tsp.ValidatePermutation(o.Result.Tour, dist.N()))
		assert.Contains(t, o.Label(), "aco alpha=1")
	}

	b, err := sweep.Run(context.Background(), dist, base, g)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_GeneticAxes(t *testing.T) {
	base := quickBase()
	base.Algo = tsp.Genetic
	g := sweep.Grid{Population: []int{4, 8}, MutationRate: []float64{0, 0.3}}

	out, err := sweep.Run(context.Background(), squareDist(t), base, g)
	require.NoError(t, err)
	require.Len(t, out, 4)
	for _, o := range out {
		assert.Equal(t, tsp.Genetic, o.Result.Algo)
		assert.Contains(t, o.Label(), "ga pop=")
	}
}

func TestRun_InvalidPointFailsUpFront(t *testing.T) {
	g := sweep.Grid{Rho: []float64{0.5, 1.5}}
	out, err := sweep.Run(context.Background(), squareDist(t), quickBase(), g)
	require.ErrorIs(t, err, tsp.ErrBadEvaporation)
	assert.Nil(t, out)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := sweep.Run(ctx, squareDist(t), quickBase(), sweep.Grid{Replications: 4})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out)
}

func TestSummarize(t *testing.T) {
	out := []sweep.Outcome{
		{Point: 1, Replication: 0, Result: tsp.Result{Length: 10}},
		{Point: 0, Replication: 1, Result: tsp.Result{Length: 6}},
		{Point: 1, Replication: 1, Result: tsp.Result{Length: 12}},
		{Point: 0, Replication: 0, Result: tsp.Result{Length: 4}},
	}
	sum := sweep.Summarize(out)
	require.Len(t, sum, 2)

	assert.Equal(t, 0, sum[0].Point)
	assert.Equal(t, 2, sum[0].Runs)
	assert.Equal(t, 4.0, sum[0].Best)
	assert.InDelta(t, 5.0, sum[0].Mean, 1e-12)
	assert.InDelta(t, 1.4142135623730951, sum[0].StdDev, 1e-12)

	assert.Equal(t, 1, sum[1].Point)
	assert.InDelta(t, 11.0, sum[1].Mean, 1e-12)
}
