package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/startour/report"
	"github.com/katalvlaran/startour/tsp"
)

func newSolveCmd(a *app) *cobra.Command {
	var plotPath string

	cmd := &cobra.Command{
		Use:   "solve <points-file>",
		Short: "Run one solver and print the best tour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err = applyRunFlags(cmd.Flags(), &cfg); err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			pts, err := a.loadPoints(args[0])
			if err != nil {
				return err
			}

			var rec *report.Recorder
			var sinks []func(tsp.Progress)
			if opts.ReportEvery > 0 {
				sinks = append(sinks, report.LogProgress(a.log))
			}
			if plotPath != "" {
				rec = report.NewRecorder()
				sinks = append(sinks, rec.Observe)
				if opts.ReportEvery == 0 {
					opts.ReportEvery = 1
				}
			}
			if len(sinks) > 0 {
				opts.OnProgress = report.Chain(sinks...)
			}

			began := time.Now()
			res, err := tsp.Solve(pts, opts)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"algo":           res.Algo.String(),
				"length":         res.Length,
				"iterations":     res.Iterations,
				"best_iteration": res.BestIteration,
				"stopped":        res.Stopped.String(),
				"elapsed":        time.Since(began).Round(time.Millisecond).String(),
			}).Info("solved")

			if rec != nil {
				title := fmt.Sprintf("%s on %d points", res.Algo, len(pts))
				if err = rec.PlotPNG(plotPath, title); err != nil {
					return err
				}
				a.log.WithField("path", plotPath).Info("convergence chart written")
			}

			return writeResult(cmd.OutOrStdout(), res, a.oneBased)
		},
	}

	addRunFlags(cmd.Flags())
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a convergence chart to this path (.png, .svg, .pdf)")

	return cmd
}

// writeResult prints the length on the first line and the tour on the second.
func writeResult(w io.Writer, res tsp.Result, oneBased bool) error {
	_, err := fmt.Fprintf(w, "length %s\ntour %s\n",
		strconv.FormatFloat(res.Length, 'f', 6, 64), formatTour(res.Tour, oneBased))

	return err
}

func formatTour(tour []int, oneBased bool) string {
	off := 0
	if oneBased {
		off = 1
	}

	var sb strings.Builder
	for i, v := range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v + off))
	}

	return sb.String()
}
