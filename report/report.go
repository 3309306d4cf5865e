package report

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/startour/tsp"
)

// Recorder accumulates progress snapshots in arrival order.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	points []tsp.Progress
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe appends p. Its signature matches tsp.Options.OnProgress.
func (r *Recorder) Observe(p tsp.Progress) {
	r.mu.Lock()
	r.points = append(r.points, p)
	r.mu.Unlock()
}

// Points returns a copy of the recorded snapshots.
func (r *Recorder) Points() []tsp.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]tsp.Progress, len(r.points))
	copy(out, r.points)

	return out
}

// Len reports how many snapshots have been recorded.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.points)
}

// Reset drops all recorded snapshots.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.points = r.points[:0]
	r.mu.Unlock()
}

// LogProgress returns a sink writing one Info entry per snapshot.
// A nil logger falls back to the logrus standard logger.
func LogProgress(logger logrus.FieldLogger) func(tsp.Progress) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return func(p tsp.Progress) {
		logger.WithFields(Fields(p)).Info("progress")
	}
}

// Fields renders p as logrus fields. Colony snapshots also carry the
// pheromone bounds.
func Fields(p tsp.Progress) logrus.Fields {
	f := logrus.Fields{
		"algo":           p.Algo.String(),
		"iteration":      p.Iteration,
		"best":           p.Best,
		"iteration_best": p.IterationBest,
		"mean":           p.Mean,
		"stddev":         p.StdDev,
	}
	if p.Algo == tsp.AntColony {
		f["tau_min"] = p.PheromoneMin
		f["tau_max"] = p.PheromoneMax
	}

	return f
}

// Chain fans one snapshot out to every non-nil sink, in order.
func Chain(sinks ...func(tsp.Progress)) func(tsp.Progress) {
	live := make([]func(tsp.Progress), 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}

	return func(p tsp.Progress) {
		for _, s := range live {
			s(p)
		}
	}
}
