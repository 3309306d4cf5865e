// Package sweep drives repeated solver runs over a grid of parameter values.
//
// Each grid point is an independent, immutable tsp.Options value deep-copied
// from a base configuration; nothing is shared between runs. Replications of
// the same point differ only in their seed: consecutive effective seeds
// starting at tsp.EffectiveSeed(base.Seed), skipping 0 (which would alias the
// default seed), so no two replications share a random stream.
//
// Per-run progress callbacks are not carried into expanded options: runs that
// need progress reporting should be driven one at a time through tsp.Solve.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/startour/tsp"
)

// ErrBadReplications signals Grid.Replications < 0.
var ErrBadReplications = errors.New("sweep: replications must be >= 0")

// Grid lists the values to try per parameter. An empty axis keeps the base
// value. Replications of 0 is treated as 1.
type Grid struct {
	Alpha        []float64
	Beta         []float64
	Rho          []float64
	Q            []float64
	Ants         []int
	Population   []int
	MutationRate []float64
	Replications int
}

// Points returns the number of distinct parameter combinations.
func (g Grid) Points() int {
	return axis(len(g.Alpha)) * axis(len(g.Beta)) * axis(len(g.Rho)) * axis(len(g.Q)) *
		axis(len(g.Ants)) * axis(len(g.Population)) * axis(len(g.MutationRate))
}

// Size returns the total number of runs: Points × replications.
func (g Grid) Size() int {
	return g.Points() * g.replications()
}

func (g Grid) replications() int {
	if g.Replications < 1 {
		return 1
	}

	return g.Replications
}

func axis(n int) int {
	if n == 0 {
		return 1
	}

	return n
}

// Expand returns one Options value per run, ordered point-major: all
// replications of the first combination, then the next combination. The
// last listed axis (MutationRate) varies fastest.
//
// Each run is copied from base with copier; Options carries only values and
// the callback, so the copy's job is to drop OnProgress through its
// `copier:"-"` tag. Expand does not validate; Run does.
//
// Complexity: O(Size) copies.
func (g Grid) Expand(base tsp.Options) ([]tsp.Options, error) {
	if g.Replications < 0 {
		return nil, ErrBadReplications
	}

	out := make([]tsp.Options, 0, g.Size())
	reps := g.replications()
	seeds := replicationSeeds(base.Seed, reps)
	for _, alpha := range values(g.Alpha, base.ACO.Alpha) {
		for _, beta := range values(g.Beta, base.ACO.Beta) {
			for _, rho := range values(g.Rho, base.ACO.Rho) {
				for _, q := range values(g.Q, base.ACO.Q) {
					for _, ants := range values(g.Ants, base.ACO.Ants) {
						for _, pop := range values(g.Population, base.GA.PopulationSize) {
							for _, mut := range values(g.MutationRate, base.GA.MutationRate) {
								for k := 0; k < reps; k++ {
									var o tsp.Options
									if err := copier.CopyWithOption(&o, &base, copier.Option{DeepCopy: true}); err != nil {
										return nil, fmt.Errorf("sweep: copy options: %w", err)
									}
									o.ACO.Alpha, o.ACO.Beta, o.ACO.Rho, o.ACO.Q, o.ACO.Ants = alpha, beta, rho, q, ants
									o.GA.PopulationSize, o.GA.MutationRate = pop, mut
									o.Seed = seeds[k]
									out = append(out, o)
								}
							}
						}
					}
				}
			}
		}
	}

	return out, nil
}

// replicationSeeds returns reps distinct non-zero seeds, counting up from the
// effective base seed.
func replicationSeeds(base int64, reps int) []int64 {
	seeds := make([]int64, reps)
	s := tsp.EffectiveSeed(base)

	var k int
	for k = 0; k < reps; k++ {
		if s == 0 {
			s++
		}
		seeds[k] = s
		s++
	}

	return seeds
}

func values[T any](axis []T, base T) []T {
	if len(axis) == 0 {
		return []T{base}
	}

	return axis
}

// Outcome is the result of one run.
type Outcome struct {
	// Point is the index of the parameter combination, Replication the
	// replication index within it.
	Point       int
	Replication int
	Options     tsp.Options
	Result      tsp.Result
}

// Label renders the swept parameters of o for logs and tables.
func (o Outcome) Label() string {
	return Label(o.Options)
}

// Label renders the swept parameters of opts relevant to its algorithm.
func Label(opts tsp.Options) string {
	switch opts.Algo {
	case tsp.Genetic:
		return fmt.Sprintf("ga pop=%d mut=%g seed=%d",
			opts.GA.PopulationSize, opts.GA.MutationRate, opts.Seed)
	case tsp.AntColony:
		return fmt.Sprintf("aco alpha=%g beta=%g rho=%g q=%g ants=%d seed=%d",
			opts.ACO.Alpha, opts.ACO.Beta, opts.ACO.Rho, opts.ACO.Q, opts.ACO.Ants, opts.Seed)
	default:
		return fmt.Sprintf("%s seed=%d", opts.Algo, opts.Seed)
	}
}

// Run expands grid over base and solves dist once per run, sequentially.
// Every expanded configuration is validated before the first run starts.
// ctx is checked between runs; on cancellation the outcomes finished so far
// are returned together with ctx.Err().
//
// Outcomes are sorted by ascending tour length; ties keep run order.
func Run(ctx context.Context, dist *tsp.DistanceMatrix, base tsp.Options, grid Grid) ([]Outcome, error) {
	runs, err := grid.Expand(base)
	if err != nil {
		return nil, err
	}
	for i := range runs {
		if err = runs[i].Validate(); err != nil {
			return nil, fmt.Errorf("sweep: run %d (%s): %w", i, Label(runs[i]), err)
		}
	}

	reps := grid.replications()
	out := make([]Outcome, 0, len(runs))
	for i, opts := range runs {
		if err = ctx.Err(); err != nil {
			sortOutcomes(out)
			return out, err
		}
		res, err := tsp.SolveWithMatrix(dist, opts)
		if err != nil {
			return nil, fmt.Errorf("sweep: run %d (%s): %w", i, Label(opts), err)
		}
		out = append(out, Outcome{Point: i / reps, Replication: i % reps, Options: opts, Result: res})
	}
	sortOutcomes(out)

	return out, nil
}

func sortOutcomes(out []Outcome) {
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Length < out[j].Result.Length
	})
}

// Summary aggregates the replications of one parameter combination.
type Summary struct {
	Point   int
	Options tsp.Options // options of the lowest replication seen
	Runs    int
	Best    float64
	Mean    float64
	StdDev  float64 // sample deviation; 0 for a single run
}

// Summarize groups outcomes by Point and returns one Summary per point,
// sorted by ascending mean length (ties by Point).
func Summarize(outcomes []Outcome) []Summary {
	byPoint := make(map[int][]Outcome)
	for _, o := range outcomes {
		byPoint[o.Point] = append(byPoint[o.Point], o)
	}

	out := make([]Summary, 0, len(byPoint))
	for p, group := range byPoint {
		sort.Slice(group, func(i, j int) bool { return group[i].Replication < group[j].Replication })
		lengths := make([]float64, len(group))
		best := group[0].Result.Length
		for i, o := range group {
			lengths[i] = o.Result.Length
			if lengths[i] < best {
				best = lengths[i]
			}
		}
		s := Summary{Point: p, Options: group[0].Options, Runs: len(group), Best: best, Mean: lengths[0]}
		if len(lengths) > 1 {
			s.Mean, s.StdDev = stat.MeanStdDev(lengths, nil)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mean != out[j].Mean {
			return out[i].Mean < out[j].Mean
		}
		return out[i].Point < out[j].Point
	})

	return out
}
