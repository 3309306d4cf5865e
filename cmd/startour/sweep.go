package main

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/startour/sweep"
	"github.com/katalvlaran/startour/tsp"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		top     int
		grid    sweep.Grid
		reps    int
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "sweep <points-file>",
		Short: "Run a solver over a grid of parameters and rank the results",
		Long: "Runs the solver once per combination of the listed parameter values " +
			"(and per replication, with seeds s, s+1, ... where s is --seed, or 1 when it is 0). Grid axes come from " +
			"the [sweep] table of --config; axis flags replace the corresponding table entry.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err = applyRunFlags(cmd.Flags(), &cfg); err != nil {
				return err
			}
			base, err := cfg.Options()
			if err != nil {
				return err
			}
			fromFile, err := cfg.Grid()
			if err != nil {
				return err
			}
			g := overlayGrid(cmd, fromFile, grid, reps)

			pts, err := a.loadPoints(args[0])
			if err != nil {
				return err
			}
			dist, err := tsp.NewDistanceMatrix(pts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			a.log.WithFields(logrus.Fields{"algo": base.Algo.String(), "runs": g.Size()}).Info("sweep started")
			out, err := sweep.Run(ctx, dist, base, g)
			if err != nil && !(len(out) > 0 && ctx.Err() != nil) {
				return err
			}
			if err != nil {
				a.log.WithField("finished", len(out)).Warn("sweep interrupted")
			}

			if summary {
				return writeSummary(cmd, sweep.Summarize(out), top)
			}
			return writeOutcomes(cmd, out, top)
		},
	}

	addRunFlags(cmd.Flags())
	fs := cmd.Flags()
	fs.IntVar(&top, "top", 10, "print only the best k rows (0 = all)")
	fs.BoolVar(&summary, "summary", false, "aggregate replications per parameter combination")
	fs.Float64SliceVar(&grid.Alpha, "sweep-alpha", nil, "alpha values")
	fs.Float64SliceVar(&grid.Beta, "sweep-beta", nil, "beta values")
	fs.Float64SliceVar(&grid.Rho, "sweep-rho", nil, "rho values")
	fs.Float64SliceVar(&grid.Q, "sweep-q", nil, "q values")
	fs.IntSliceVar(&grid.Ants, "sweep-ants", nil, "ant counts")
	fs.IntSliceVar(&grid.Population, "sweep-population", nil, "population sizes")
	fs.Float64SliceVar(&grid.MutationRate, "sweep-mutation-rate", nil, "mutation rates")
	fs.IntVar(&reps, "replications", 1, "runs per combination")

	return cmd
}

// overlayGrid replaces the axes of g whose flags were set.
func overlayGrid(cmd *cobra.Command, g, flags sweep.Grid, reps int) sweep.Grid {
	fs := cmd.Flags()
	if fs.Changed("sweep-alpha") {
		g.Alpha = flags.Alpha
	}
	if fs.Changed("sweep-beta") {
		g.Beta = flags.Beta
	}
	if fs.Changed("sweep-rho") {
		g.Rho = flags.Rho
	}
	if fs.Changed("sweep-q") {
		g.Q = flags.Q
	}
	if fs.Changed("sweep-ants") {
		g.Ants = flags.Ants
	}
	if fs.Changed("sweep-population") {
		g.Population = flags.Population
	}
	if fs.Changed("sweep-mutation-rate") {
		g.MutationRate = flags.MutationRate
	}
	if fs.Changed("replications") {
		g.Replications = reps
	}

	return g
}

func writeOutcomes(cmd *cobra.Command, out []sweep.Outcome, top int) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tlength\titerations\tstopped\tparameters")
	for i, o := range out {
		if top > 0 && i >= top {
			break
		}
		fmt.Fprintf(tw, "%d\t%.6f\t%d\t%s\t%s\n",
			i+1, o.Result.Length, o.Result.Iterations, o.Result.Stopped, o.Label())
	}

	return tw.Flush()
}

func writeSummary(cmd *cobra.Command, sum []sweep.Summary, top int) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tmean\tstddev\tbest\truns\tparameters")
	for i, s := range sum {
		if top > 0 && i >= top {
			break
		}
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%d\t%s\n",
			i+1, s.Mean, s.StdDev, s.Best, s.Runs, sweep.Label(s.Options))
	}

	return tw.Flush()
}
