package tsp

import "errors"

// Sentinel errors. Every public function in this package returns one of
// these (possibly wrapped with %w at a boundary); match them with errors.Is.
var (
	// ErrNoPoints is returned when the point set or distance matrix is empty.
	ErrNoPoints = errors.New("tsp: empty point set")

	// ErrDimensionMismatch signals a shape/length inconsistency between inputs
	// (tour length != n, index out of range, nil matrix).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonFinite signals a NaN/±Inf coordinate or distance.
	ErrNonFinite = errors.New("tsp: non-finite coordinate or distance")

	// ErrNegativeWeight signals a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrNonZeroDiagonal signals dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal")

	// ErrAsymmetry signals dist[i][j] != dist[j][i]; only the symmetric metric is supported.
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrInvalidTour signals that a tour is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation")

	// ErrStartOutOfRange signals StartVertex ∉ [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrUnsupportedAlgorithm signals an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrBadIterations signals MaxIterations <= 0.
	ErrBadIterations = errors.New("tsp: max iterations must be > 0")

	// ErrBadTarget signals a NaN or negative TargetLength.
	ErrBadTarget = errors.New("tsp: target length must be finite and >= 0")

	// ErrBadWorkers signals Workers < 0.
	ErrBadWorkers = errors.New("tsp: workers must be >= 0")

	// ErrBadReportEvery signals ReportEvery < 0.
	ErrBadReportEvery = errors.New("tsp: report interval must be >= 0")

	// ErrBadTwoOptMoves signals TwoOptMaxMoves < 0.
	ErrBadTwoOptMoves = errors.New("tsp: 2-opt move cap must be >= 0")

	// ErrBadAntCount signals ACO.Ants < 0.
	ErrBadAntCount = errors.New("tsp: ant count must be >= 0")

	// ErrBadExponent signals a negative or non-finite ALPHA/BETA.
	ErrBadExponent = errors.New("tsp: alpha and beta must be finite and >= 0")

	// ErrBadEvaporation signals RHO ∉ [0, 1].
	ErrBadEvaporation = errors.New("tsp: rho must be in [0, 1]")

	// ErrBadDeposit signals a negative or non-finite Q.
	ErrBadDeposit = errors.New("tsp: deposit constant q must be finite and >= 0")

	// ErrBadInitialPheromone signals a negative or non-finite initial pheromone.
	ErrBadInitialPheromone = errors.New("tsp: initial pheromone must be finite and >= 0")

	// ErrBadPopulation signals PopulationSize < 2.
	ErrBadPopulation = errors.New("tsp: population size must be >= 2")

	// ErrBadMutationRate signals MutationRate ∉ [0, 1].
	ErrBadMutationRate = errors.New("tsp: mutation rate must be in [0, 1]")

	// ErrBadMutationOperator signals an unknown GA.Mutation value.
	ErrBadMutationOperator = errors.New("tsp: unknown mutation operator")

	// ErrBadElitism signals Elitism < 0 or Elitism >= PopulationSize.
	ErrBadElitism = errors.New("tsp: elitism must be in [0, population size)")
)

// Algorithm selects the solver run by the dispatcher.
type Algorithm int

const (
	// AntColony runs the ant colony optimizer (pheromone + visibility roulette).
	AntColony Algorithm = iota

	// Genetic runs the generational genetic algorithm (tournament, OX, mutation).
	Genetic

	// NearestNeighbor runs the greedy baseline; it ignores iteration settings.
	NearestNeighbor
)

// String returns the short name used in logs and CLI flags.
func (a Algorithm) String() string {
	switch a {
	case AntColony:
		return "aco"
	case Genetic:
		return "ga"
	case NearestNeighbor:
		return "nn"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps "aco" / "ga" / "nn" back to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "aco":
		return AntColony, nil
	case "ga":
		return Genetic, nil
	case "nn":
		return NearestNeighbor, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// StopReason tells why a solver returned.
type StopReason int

const (
	// StopMaxIterations: the iteration cap was reached.
	StopMaxIterations StopReason = iota

	// StopTarget: the best length dropped below Options.TargetLength.
	StopTarget

	// StopTrivial: n <= 1, the answer needs no search.
	StopTrivial

	// StopConstructed: a single-pass constructive heuristic finished.
	StopConstructed
)

// String implements fmt.Stringer.
func (s StopReason) String() string {
	switch s {
	case StopMaxIterations:
		return "max-iterations"
	case StopTarget:
		return "target"
	case StopTrivial:
		return "trivial"
	case StopConstructed:
		return "constructed"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a solver run.
type Result struct {
	// Algo is the solver that produced the result.
	Algo Algorithm

	// Tour is a permutation of 0..n-1 starting at Options.StartVertex.
	// The cycle is implicit: the last vertex connects back to Tour[0].
	Tour []int

	// Length is the total cyclic length, rounded to 1e-9.
	Length float64

	// Iterations is the number of completed iterations (generations).
	Iterations int

	// BestIteration is the iteration in which Tour was first found
	// (0 means the initial population / construction).
	BestIteration int

	// Stopped tells which termination condition fired.
	Stopped StopReason
}

// Progress is the snapshot handed to Options.OnProgress.
type Progress struct {
	Algo          Algorithm
	Iteration     int     // completed iterations
	Best          float64 // best length found so far
	IterationBest float64 // best length among this iteration's ants / population
	Mean          float64 // mean length of this iteration's ants / population
	StdDev        float64 // sample standard deviation (0 when fewer than two samples)

	// PheromoneMin and PheromoneMax bound the off-diagonal pheromone after the
	// update. Colony only; zero for the other engines.
	PheromoneMin float64
	PheromoneMax float64
}
