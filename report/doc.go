// Package report turns the progress snapshots emitted by the tsp solvers into
// something a person can look at: structured log lines (logrus) and a
// convergence chart (gonum/plot).
//
// The sinks are plain func(tsp.Progress) values so they plug straight into
// tsp.Options.OnProgress:
//
//	rec := report.NewRecorder()
//	opts.ReportEvery = 10
//	opts.OnProgress = report.Chain(rec.Observe, report.LogProgress(logger))
//	res, err := tsp.Solve(points, opts)
//	...
//	err = rec.PlotPNG("run.png", "ACO on cloud-200")
package report
