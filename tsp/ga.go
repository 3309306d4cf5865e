// Package tsp - generational genetic algorithm engine.
//
// Evolution runs the state machine
//
//	INIT_POPULATION → (EVALUATE → SELECT+BREED → MUTATE → REPLACE → CHECK_TERMINATION)* → DONE
//
// one Step per generation:
//   - INIT_POPULATION: every individual is StartVertex followed by a uniform
//     shuffle of the remaining vertices. The start vertex stays at position 0
//     for the whole run: crossover preserves it and mutation never touches it.
//   - SELECT+BREED: two binary tournaments pick the parents; ordered crossover
//     with cuts in [1, n-1] produces the child.
//   - MUTATE: per-child Bernoulli trial(s), see mutation.go.
//   - EVALUATE: fitness (cyclic length) is computed right after the child's
//     path is final, so it is never stale.
//   - REPLACE: the new population replaces the old one wholesale. With
//     GAOptions.Elitism = k the k fittest individuals are copied first.
//   - CHECK_TERMINATION: Termination.Done on the best fitness seen so far.
//
// Children may be bred in parallel (Options.Workers). Parents are read from
// the current buffer and children are written to the other one, so no buffer
// is both read and written during a generation.
//
// Complexity: O(gen · pop · n) time, O(pop · n) memory.
package tsp

import (
	"math"
	"math/rand"
	"sort"
)

// Individual is a tour together with its cached fitness (cyclic length).
type Individual struct {
	Tour    []int
	Fitness float64
}

// Population is a fixed-size generation of individuals.
type Population []Individual

// FindBest returns the index of the individual with minimum fitness; ties go
// to the lowest index. Returns -1 for an empty population.
//
// Complexity: O(len(pop)).
func FindBest(pop Population) int {
	if len(pop) == 0 {
		return -1
	}

	var (
		i    int
		best = 0
	)
	for i = 1; i < len(pop); i++ {
		if pop[i].Fitness < pop[best].Fitness {
			best = i
		}
	}

	return best
}

// Evolution is a running genetic algorithm over one distance matrix.
// It is not safe for concurrent use.
type Evolution struct {
	dist *DistanceMatrix
	opts Options
	term Termination
	n    int
	size int

	cur, next Population
	streams   []*rand.Rand
	seen      [][]bool // per-slot crossover scratch
	order     []int    // elite ranking scratch
	fitness   []float64

	best       []int
	bestLen    float64
	bestIter   int
	generation int
	done       bool
	stopped    StopReason
}

// NewEvolution validates inputs and builds the initial population.
// For n == 1 the evolution is born finished with tour [0].
//
// Complexity: O(pop · n).
func NewEvolution(dist *DistanceMatrix, opts Options) (*Evolution, error) {
	opts.Algo = Genetic
	if err := validateRun(dist, opts); err != nil {
		return nil, err
	}

	e := &Evolution{
		dist:    dist,
		opts:    opts,
		term:    opts.termination(),
		n:       dist.n,
		size:    opts.GA.PopulationSize,
		bestLen: math.Inf(1),
	}
	if e.n == 1 {
		e.best = []int{0}
		e.bestLen = 0
		e.done = true
		e.stopped = StopTrivial
		return e, nil
	}

	e.streams = deriveStreams(rngFromSeed(opts.Seed), e.size)
	e.cur = make(Population, e.size)
	e.next = make(Population, e.size)
	e.seen = make([][]bool, e.size)
	e.order = make([]int, e.size)
	e.fitness = make([]float64, e.size)

	var k int
	for k = 0; k < e.size; k++ {
		e.cur[k].Tour = make([]int, e.n)
		e.next[k].Tour = make([]int, e.n)
		e.seen[k] = make([]bool, e.n)
	}

	// INIT_POPULATION
	forEachSlot(0, e.size, opts.Workers, e.streams, e.randomIndividual)
	if err := e.checkPopulation(e.cur); err != nil {
		return nil, err
	}
	e.track()

	return e, nil
}

// randomIndividual fills cur[k] with start + shuffled rest and evaluates it.
func (e *Evolution) randomIndividual(k int, rng *rand.Rand) {
	ind := &e.cur[k]
	identityTour(ind.Tour, e.opts.StartVertex)
	shuffleIntsInPlace(ind.Tour[1:], rng)
	ind.Fitness = tourLength(e.dist.rows, ind.Tour)
}

// Step runs one generation. It returns true once the evolution is done;
// further calls are no-ops. An error is only possible with
// Options.CheckInvariants enabled.
func (e *Evolution) Step() (bool, error) {
	if e.done {
		return true, nil
	}

	elite := e.opts.GA.Elitism
	if elite > 0 {
		e.copyElite(elite)
	}

	// SELECT+BREED, MUTATE, EVALUATE (barrier at return)
	forEachSlot(elite, e.size, e.opts.Workers, e.streams, e.breed)
	if err := e.checkPopulation(e.next); err != nil {
		return false, err
	}

	// REPLACE
	e.cur, e.next = e.next, e.cur
	e.generation++
	e.track()

	if e.opts.shouldReport(e.generation) {
		var k int
		for k = range e.cur {
			e.fitness[k] = e.cur[k].Fitness
		}
		lo, mean, std := summarize(e.fitness)
		e.opts.OnProgress(Progress{
			Algo:          Genetic,
			Iteration:     e.generation,
			Best:          round1e9(e.bestLen),
			IterationBest: round1e9(lo),
			Mean:          mean,
			StdDev:        std,
		})
	}

	// CHECK_TERMINATION
	if e.term.Done(e.generation, e.bestLen) {
		e.done = true
		e.stopped = e.term.reason(e.bestLen)
	}

	return e.done, nil
}

// breed writes child k of the next generation.
func (e *Evolution) breed(k int, rng *rand.Rand) {
	p1 := e.cur[e.tournament(rng)].Tour
	p2 := e.cur[e.tournament(rng)].Tour

	start := 1 + rng.Intn(e.n-1)
	end := 1 + rng.Intn(e.n-1)
	if start > end {
		start, end = end, start
	}

	child := &e.next[k]
	orderedCrossoverInto(child.Tour, p1, p2, start, end, e.seen[k])
	mutate(child.Tour, e.opts.GA.Mutation, e.opts.GA.MutationRate, rng)
	child.Fitness = tourLength(e.dist.rows, child.Tour)
}

// tournament draws two individuals uniformly and returns the index of the
// fitter one; on a tie the second draw wins.
func (e *Evolution) tournament(rng *rand.Rand) int {
	a := rng.Intn(e.size)
	b := rng.Intn(e.size)
	if e.cur[a].Fitness < e.cur[b].Fitness {
		return a
	}

	return b
}

// copyElite copies the k fittest current individuals into next[0..k).
// Ties keep population order.
func (e *Evolution) copyElite(k int) {
	var i int
	for i = range e.order {
		e.order[i] = i
	}
	sort.SliceStable(e.order, func(a, b int) bool {
		return e.cur[e.order[a]].Fitness < e.cur[e.order[b]].Fitness
	})

	for i = 0; i < k; i++ {
		src := e.cur[e.order[i]]
		copy(e.next[i].Tour, src.Tour)
		e.next[i].Fitness = src.Fitness
	}
}

// track updates the best-ever archive from the current population; only a
// strictly shorter tour replaces it.
func (e *Evolution) track() {
	bi := FindBest(e.cur)
	if e.cur[bi].Fitness < e.bestLen {
		e.bestLen = e.cur[bi].Fitness
		e.best = CopyTour(e.cur[bi].Tour)
		e.bestIter = e.generation
	}
}

func (e *Evolution) checkPopulation(pop Population) error {
	if !e.opts.CheckInvariants {
		return nil
	}

	tours := make([][]int, len(pop))
	for k := range pop {
		tours[k] = pop[k].Tour
	}

	return checkTours(true, e.n, tours)
}

// Done reports whether the evolution has terminated.
func (e *Evolution) Done() bool { return e.done }

// Generation returns the number of completed generations.
func (e *Evolution) Generation() int { return e.generation }

// BestLength returns the best fitness seen so far.
func (e *Evolution) BestLength() float64 { return e.bestLen }

// Population returns a deep copy of the current generation (nil for n == 1).
//
// Complexity: O(pop · n).
func (e *Evolution) Population() Population {
	if e.cur == nil {
		return nil
	}

	out := make(Population, len(e.cur))
	for k := range e.cur {
		out[k] = Individual{Tour: CopyTour(e.cur[k].Tour), Fitness: e.cur[k].Fitness}
	}

	return out
}

// Result packages the best individual ever seen.
func (e *Evolution) Result() Result {
	return Result{
		Algo:          Genetic,
		Tour:          CopyTour(e.best),
		Length:        round1e9(e.bestLen),
		Iterations:    e.generation,
		BestIteration: e.bestIter,
		Stopped:       e.stopped,
	}
}

// SolveGA evolves a population to termination and returns the best tour seen.
//
// Errors: validation sentinels from validate.go; ErrInvalidTour only with
// Options.CheckInvariants.
func SolveGA(dist *DistanceMatrix, opts Options) (Result, error) {
	e, err := NewEvolution(dist, opts)
	if err != nil {
		return Result{}, err
	}

	var done bool
	for !done {
		if done, err = e.Step(); err != nil {
			return Result{}, err
		}
	}

	return e.Result(), nil
}
