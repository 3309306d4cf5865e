package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/startour/builder"
	"github.com/katalvlaran/startour/geom"
)

func TestBuild_IDsAndConcatenation(t *testing.T) {
	pts, err := builder.Build(nil, builder.Circle(4), builder.Grid(2, 1, 1))
	require.NoError(t, err)
	require.Len(t, pts, 6)
	for i, p := range pts {
		assert.Equal(t, i, p.ID)
	}
	assert.InDelta(t, 1.0, pts[0].X, 1e-12)
	assert.Equal(t, geom.Point{ID: 5, X: 1}, pts[5])
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(nil)
	require.ErrorIs(t, err, builder.ErrNoConstructor)

	_, err = builder.Build(nil, builder.Cloud(5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build([]builder.Option{builder.WithJitter(0.1)}, builder.Circle(5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	for _, con := range []builder.Constructor{
		builder.Circle(2), builder.Cloud(0), builder.Helix(0, 1), builder.Helix(5, 0),
		builder.Grid(0, 1, 1), builder.Sphere(0),
	} {
		_, err = builder.Build([]builder.Option{builder.WithSeed(1)}, con)
		require.ErrorIs(t, err, builder.ErrTooFewPoints)
	}
}

func TestCloud_DeterministicAndBounded(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(3), builder.WithScale(50)}
	a, err := builder.Build(opts, builder.Cloud(100))
	require.NoError(t, err)
	b, err := builder.Build([]builder.Option{builder.WithSeed(3), builder.WithScale(50)}, builder.Cloud(100))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for _, p := range a {
		for _, c := range p.Coords() {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.Less(t, c, 50.0)
		}
	}
}

func TestCircle_RadiusAndCenter(t *testing.T) {
	pts, err := builder.Build(
		[]builder.Option{builder.WithScale(3), builder.WithCenter(1, 2, 3)},
		builder.Circle(12),
	)
	require.NoError(t, err)

	center := geom.Point{X: 1, Y: 2, Z: 3}
	for _, p := range pts {
		assert.InDelta(t, 3.0, geom.Distance(p, center), 1e-12)
		assert.Equal(t, 3.0, p.Z)
	}
	// Consecutive vertices are one side of the regular 12-gon apart.
	assert.InDelta(t, 2*3*math.Sin(math.Pi/12), geom.Distance(pts[0], pts[1]), 1e-12)
}

func TestHelix_Rises(t *testing.T) {
	pts, err := builder.Build(nil, builder.Helix(20, 2))
	require.NoError(t, err)
	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i].Z, pts[i-1].Z)
	}
}

func TestSphere_OnSurface(t *testing.T) {
	for _, n := range []int{1, 2, 50} {
		pts, err := builder.Build([]builder.Option{builder.WithScale(4)}, builder.Sphere(n))
		require.NoError(t, err)
		for _, p := range pts {
			assert.InDelta(t, 4.0, geom.Distance(p, geom.Point{}), 1e-9)
		}
	}
}

func TestJitter_MovesPoints(t *testing.T) {
	plain, err := builder.Build(nil, builder.Grid(3, 3, 1))
	require.NoError(t, err)
	noisy, err := builder.Build([]builder.Option{builder.WithSeed(1), builder.WithJitter(0.01)}, builder.Grid(3, 3, 1))
	require.NoError(t, err)

	for i := range plain {
		assert.NotEqual(t, plain[i], noisy[i])
		assert.InDelta(t, 0, geom.Distance(plain[i], noisy[i]), 0.1)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithScale(0) })
	assert.Panics(t, func() { builder.WithScale(math.Inf(1)) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
}
