package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned by PlotPNG when nothing has been recorded.
var ErrNoData = errors.New("report: no progress recorded")

// Plot size used by PlotPNG.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// PlotPNG draws best-so-far, iteration-best and mean tour length against the
// iteration number and saves the chart to path. The image format follows the
// file extension (png, svg, pdf, ...), as gonum/plot decides.
func (r *Recorder) PlotPNG(path, title string) error {
	pts := r.Points()
	if len(pts) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Tour length"

	best := make(plotter.XYs, len(pts))
	iter := make(plotter.XYs, len(pts))
	mean := make(plotter.XYs, len(pts))
	for i, s := range pts {
		x := float64(s.Iteration)
		best[i].X, best[i].Y = x, s.Best
		iter[i].X, iter[i].Y = x, s.IterationBest
		mean[i].X, mean[i].Y = x, s.Mean
	}

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("report: best line: %w", err)
	}
	iterLine, err := plotter.NewLine(iter)
	if err != nil {
		return fmt.Errorf("report: iteration line: %w", err)
	}
	meanLine, err := plotter.NewLine(mean)
	if err != nil {
		return fmt.Errorf("report: mean line: %w", err)
	}
	iterLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}

	p.Add(plotter.NewGrid(), bestLine, iterLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("iteration best", iterLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true

	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}
