package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/startour/builder"
	"github.com/katalvlaran/startour/pointio"
)

var (
	errBadShape  = errors.New("gen: unknown shape")
	errBadScale  = errors.New("gen: --scale must be finite and > 0")
	errBadJitter = errors.New("gen: --jitter must be finite and >= 0")
	errBadCenter = errors.New("gen: --center takes exactly three values")
)

type genFlags struct {
	shape      string
	n          int
	turns      int
	nx, ny, nz int
	seed       int64
	scale      float64
	jitter     float64
	center     []float64
	out        string
}

func newGenCmd(a *app) *cobra.Command {
	var g genFlags

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic point set",
		Long: "Shapes: cloud (uniform in [0, scale)^3, needs --seed), circle, helix, grid, sphere. " +
			"Points are written one per line as \"x y z\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := g.options(cmd)
			if err != nil {
				return err
			}
			con, err := g.constructor()
			if err != nil {
				return err
			}
			pts, err := builder.Build(opts, con)
			if err != nil {
				return err
			}

			if g.out == "" || g.out == "-" {
				return pointio.Write(cmd.OutOrStdout(), pts)
			}
			if err = pointio.WriteFile(g.out, pts); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"shape": g.shape, "points": len(pts), "path": g.out}).Info("points written")

			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&g.shape, "shape", "cloud", "cloud, circle, helix, grid or sphere")
	fs.IntVar(&g.n, "n", 100, "number of points (cloud, circle, helix, sphere)")
	fs.IntVar(&g.turns, "turns", 3, "helix revolutions")
	fs.IntVar(&g.nx, "nx", 5, "grid points along x")
	fs.IntVar(&g.ny, "ny", 5, "grid points along y")
	fs.IntVar(&g.nz, "nz", 5, "grid points along z")
	fs.Int64Var(&g.seed, "seed", 1, "random seed for cloud and jitter")
	fs.Float64Var(&g.scale, "scale", 100, "cube side, radius or grid spacing")
	fs.Float64Var(&g.jitter, "jitter", 0, "standard deviation of Gaussian per-axis noise")
	fs.Float64SliceVar(&g.center, "center", nil, "translation x,y,z")
	fs.StringVarP(&g.out, "out", "o", "", "output file (default stdout)")

	return cmd
}

// options turns the flags into builder options; builder panics on bad
// values, so they are checked here first.
func (g genFlags) options(cmd *cobra.Command) ([]builder.Option, error) {
	if math.IsNaN(g.scale) || math.IsInf(g.scale, 0) || g.scale <= 0 {
		return nil, errBadScale
	}
	if math.IsNaN(g.jitter) || math.IsInf(g.jitter, 0) || g.jitter < 0 {
		return nil, errBadJitter
	}

	opts := []builder.Option{builder.WithScale(g.scale)}
	if g.shape == "cloud" || g.jitter > 0 || cmd.Flags().Changed("seed") {
		opts = append(opts, builder.WithSeed(g.seed))
	}
	if g.jitter > 0 {
		opts = append(opts, builder.WithJitter(g.jitter))
	}
	if g.center != nil {
		if len(g.center) != 3 {
			return nil, errBadCenter
		}
		opts = append(opts, builder.WithCenter(g.center[0], g.center[1], g.center[2]))
	}

	return opts, nil
}

func (g genFlags) constructor() (builder.Constructor, error) {
	switch g.shape {
	case "cloud":
		return builder.Cloud(g.n), nil
	case "circle":
		return builder.Circle(g.n), nil
	case "helix":
		return builder.Helix(g.n, g.turns), nil
	case "grid":
		return builder.Grid(g.nx, g.ny, g.nz), nil
	case "sphere":
		return builder.Sphere(g.n), nil
	default:
		return nil, fmt.Errorf("%w: %q", errBadShape, g.shape)
	}
}
