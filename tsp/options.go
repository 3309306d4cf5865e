package tsp

// MutationOperator selects how GA children are perturbed.
type MutationOperator int

const (
	// MutateComposite runs a segment-reversal trial followed by an independent
	// adjacent-swap trial (1–3 swaps), each at MutationRate.
	MutateComposite MutationOperator = iota

	// MutateReverse reverses a random contiguous sub-range (never position 0).
	MutateReverse

	// MutateAdjacentSwap swaps a random adjacent pair 1–3 times (never position 0).
	MutateAdjacentSwap
)

// String implements fmt.Stringer.
func (m MutationOperator) String() string {
	switch m {
	case MutateComposite:
		return "composite"
	case MutateReverse:
		return "reverse"
	case MutateAdjacentSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// ParseMutationOperator maps "composite" / "reverse" / "swap" back to a MutationOperator.
func ParseMutationOperator(s string) (MutationOperator, error) {
	switch s {
	case "composite":
		return MutateComposite, nil
	case "reverse":
		return MutateReverse, nil
	case "swap":
		return MutateAdjacentSwap, nil
	default:
		return 0, ErrBadMutationOperator
	}
}

// ACOOptions configures the ant colony engine.
type ACOOptions struct {
	// Ants is the number of ants per iteration; 0 means one ant per point.
	Ants int

	// Alpha is the pheromone exponent.
	Alpha float64

	// Beta is the visibility (1/distance) exponent.
	Beta float64

	// Rho is the evaporation rate; every entry is scaled by (1-Rho) once per iteration.
	Rho float64

	// Q is the deposit constant; each ant adds Q/length on every edge of its tour.
	Q float64

	// InitialPheromone is the uniform starting intensity.
	InitialPheromone float64

	// RandomStart draws each ant's start uniformly instead of using StartVertex.
	RandomStart bool
}

// GAOptions configures the genetic engine.
type GAOptions struct {
	// PopulationSize is the fixed number of individuals per generation (>= 2).
	PopulationSize int

	// MutationRate is the per-child Bernoulli probability of each mutation trial.
	MutationRate float64

	// Mutation selects the mutation operator.
	Mutation MutationOperator

	// Elitism is the number of best individuals copied unchanged into the next
	// generation; 0 keeps replacement fully generational.
	Elitism int
}

// Options is the immutable configuration passed by value into every solve.
//
// Fields:
//   - Algo           : solver selected by SolveWithMatrix / Solve.
//   - MaxIterations  : iteration (generation) cap; the backstop against unbounded runs.
//   - TargetLength   : stop once the best length is strictly below it; 0 disables.
//   - Seed           : RNG seed; 0 maps to a fixed default (see rng.go).
//   - StartVertex    : fixed first vertex of every tour.
//   - Workers        : parallel ants/children per iteration; 0 or 1 runs inline.
//   - ReportEvery    : call OnProgress every k completed iterations; 0 disables.
//   - OnProgress     : optional progress sink; must not retain the Progress value's slices.
//   - CheckInvariants: validate every produced tour as a permutation (debug hook).
//   - LocalSearch    : polish the returned tour with 2-opt (see two_opt.go).
//   - TwoOptMaxMoves : cap on accepted 2-opt moves; 0 runs to a local optimum.
type Options struct {
	Algo            Algorithm
	MaxIterations   int
	TargetLength    float64
	Seed            int64
	StartVertex     int
	Workers         int
	ReportEvery     int
	OnProgress      func(Progress) `copier:"-"`
	CheckInvariants bool
	LocalSearch     bool
	TwoOptMaxMoves  int

	ACO ACOOptions
	GA  GAOptions
}

// DefaultOptions returns the configuration used by the reference runs:
// ALPHA=1, BETA=2, RHO=0.5, Q=100, initial pheromone 1.0 for the colony;
// population 30 with mutation rate 0.05 for the genetic engine.
func DefaultOptions() Options {
	return Options{
		Algo:          AntColony,
		MaxIterations: 1000,
		TargetLength:  0,
		Seed:          0,
		StartVertex:   0,
		Workers:       1,
		ReportEvery:   0,
		ACO: ACOOptions{
			Ants:             0,
			Alpha:            1.0,
			Beta:             2.0,
			Rho:              0.5,
			Q:                100,
			InitialPheromone: 1.0,
		},
		GA: GAOptions{
			PopulationSize: 30,
			MutationRate:   0.05,
			Mutation:       MutateComposite,
			Elitism:        0,
		},
	}
}

// termination derives the shared stopping predicate from the options.
func (o Options) termination() Termination {
	return Termination{MaxIterations: o.MaxIterations, Target: o.TargetLength}
}

// shouldReport tells whether a progress snapshot is due after iteration it.
func (o Options) shouldReport(it int) bool {
	return o.OnProgress != nil && o.ReportEvery > 0 && it%o.ReportEvery == 0
}
