// Package tsp - ant colony optimization engine.
//
// Colony runs the state machine
//
//	INIT → (CONSTRUCT_TOURS → UPDATE_PHEROMONE → CHECK_TERMINATION)* → DONE
//
// one Step per iteration:
//   - CONSTRUCT_TOURS: every ant builds a full tour. The next vertex is drawn
//     with probability ∝ τ[cur][j]^α · (1/d[cur][j])^β over unvisited j, using a
//     cumulative roulette against U[0,total). When no candidate accumulates
//     mass (underflow, zero pheromone, non-finite total) the first unvisited
//     index is taken instead (selectNext / firstUnvisited).
//   - UPDATE_PHEROMONE: global evaporation τ ← (1-ρ)·τ, once per iteration, then
//     each ant deposits Q/L on every edge of its tour.
//   - CHECK_TERMINATION: Termination.Done on the best length so far.
//
// Ants may be constructed in parallel (Options.Workers); the pheromone matrix is
// only touched after the barrier. The best tour is an archive of size one,
// replaced only by a strictly shorter tour.
//
// Complexity: O(iter · ants · n²) time, O(n² + ants·n) memory.
package tsp

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/startour/matrix"
)

// minVisibilityDistance replaces zero distances (coincident points) when
// computing 1/d, keeping the visibility finite.
const minVisibilityDistance = 1e-12

// Colony is a running ant colony over one distance matrix.
// A Colony is not safe for concurrent use; Step drives it from one goroutine.
type Colony struct {
	dist *DistanceMatrix
	opts Options
	term Termination
	n    int
	ants int

	tau *pheromoneMatrix
	eta [][]float64 // (1/d)^β, computed once

	streams []*rand.Rand
	tours   [][]int     // per-ant tour buffers
	visited [][]bool    // per-ant visited sets
	weights [][]float64 // per-ant roulette scratch
	lengths []float64

	best      []int
	bestLen   float64
	bestIter  int
	iteration int
	done      bool
	stopped   StopReason
}

// NewColony validates inputs and initializes pheromone, visibility and the
// per-ant buffers. For n == 1 the colony is born finished with tour [0].
//
// Complexity: O(n² + ants·n).
func NewColony(dist *DistanceMatrix, opts Options) (*Colony, error) {
	opts.Algo = AntColony
	if err := validateRun(dist, opts); err != nil {
		return nil, err
	}

	c := &Colony{
		dist:    dist,
		opts:    opts,
		term:    opts.termination(),
		n:       dist.n,
		bestLen: math.Inf(1),
	}
	if c.n == 1 {
		c.best = []int{0}
		c.bestLen = 0
		c.done = true
		c.stopped = StopTrivial
		return c, nil
	}

	c.ants = opts.ACO.Ants
	if c.ants == 0 {
		c.ants = c.n
	}

	var err error
	if c.tau, err = newPheromoneMatrix(c.n, opts.ACO.InitialPheromone); err != nil {
		return nil, err
	}
	c.eta = visibility(dist, opts.ACO.Beta)

	c.streams = deriveStreams(rngFromSeed(opts.Seed), c.ants)
	c.tours = make([][]int, c.ants)
	c.visited = make([][]bool, c.ants)
	c.weights = make([][]float64, c.ants)
	c.lengths = make([]float64, c.ants)

	var k int
	for k = 0; k < c.ants; k++ {
		c.tours[k] = make([]int, c.n)
		c.visited[k] = make([]bool, c.n)
		c.weights[k] = make([]float64, c.n)
	}

	return c, nil
}

// visibility precomputes (1/d[i][j])^β for i≠j.
func visibility(dist *DistanceMatrix, beta float64) [][]float64 {
	n := dist.n
	eta := make([][]float64, n)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		eta[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			d = dist.rows[i][j]
			if d < minVisibilityDistance {
				d = minVisibilityDistance
			}
			eta[i][j] = powFast(1/d, beta)
		}
	}

	return eta
}

// Step runs one full iteration. It returns true once the colony is done;
// further calls are no-ops. With Options.CheckInvariants enabled an error
// reports ErrInvalidTour for a non-permutation, or a matrix sentinel when the
// pheromone matrix lost non-negativity or symmetry. ErrDimensionMismatch from
// the deposit signals a tour index outside the matrix.
func (c *Colony) Step() (bool, error) {
	if c.done {
		return true, nil
	}

	// CONSTRUCT_TOURS (barrier at return)
	forEachSlot(0, c.ants, c.opts.Workers, c.streams, c.constructTour)
	if err := checkTours(c.opts.CheckInvariants, c.n, c.tours); err != nil {
		return false, err
	}

	// Best tracking in ant order, independent of scheduling.
	var k int
	for k = 0; k < c.ants; k++ {
		if c.lengths[k] < c.bestLen {
			c.bestLen = c.lengths[k]
			c.best = CopyTour(c.tours[k])
			c.bestIter = c.iteration + 1
		}
	}

	// UPDATE_PHEROMONE
	c.tau.evaporate(c.opts.ACO.Rho)
	for k = 0; k < c.ants; k++ {
		if c.lengths[k] > 0 {
			if err := c.tau.deposit(c.tours[k], c.opts.ACO.Q/c.lengths[k]); err != nil {
				return false, err
			}
		}
	}
	c.iteration++
	if err := c.checkPheromone(); err != nil {
		return false, err
	}

	if c.opts.shouldReport(c.iteration) {
		lo, mean, std := summarize(c.lengths)
		tauMin, tauMax := c.tau.bounds()
		c.opts.OnProgress(Progress{
			Algo:          AntColony,
			Iteration:     c.iteration,
			Best:          round1e9(c.bestLen),
			IterationBest: round1e9(lo),
			Mean:          mean,
			StdDev:        std,
			PheromoneMin:  tauMin,
			PheromoneMax:  tauMax,
		})
	}

	// CHECK_TERMINATION
	if c.term.Done(c.iteration, c.bestLen) {
		c.done = true
		c.stopped = c.term.reason(c.bestLen)
	}

	return c.done, nil
}

// checkPheromone verifies, under Options.CheckInvariants, that the pheromone
// matrix is still non-negative and symmetric after the update.
func (c *Colony) checkPheromone() error {
	if !c.opts.CheckInvariants {
		return nil
	}
	if err := matrix.ValidateNonNegative(c.tau.tau); err != nil {
		return fmt.Errorf("pheromone after iteration %d: %w", c.iteration, err)
	}
	if err := matrix.ValidateSymmetric(c.tau.tau, symTol); err != nil {
		return fmt.Errorf("pheromone after iteration %d: %w", c.iteration, err)
	}

	return nil
}

// constructTour builds ant k's tour into c.tours[k] and records its length.
// It only reads shared state (τ, η, distances).
func (c *Colony) constructTour(k int, rng *rand.Rand) {
	tour, visited, weights := c.tours[k], c.visited[k], c.weights[k]

	var i int
	for i = range visited {
		visited[i] = false
	}

	cur := c.opts.StartVertex
	if c.opts.ACO.RandomStart {
		cur = rng.Intn(c.n)
	}
	tour[0] = cur
	visited[cur] = true

	var next int
	for i = 1; i < c.n; i++ {
		next = selectNext(c.tau.rows[cur], c.eta[cur], visited, weights, c.opts.ACO.Alpha, rng)
		tour[i] = next
		visited[next] = true
		cur = next
	}

	c.lengths[k] = tourLength(c.dist.rows, tour)
}

// selectNext draws the next vertex by roulette over unvisited candidates with
// weight τ^α·η. The draw r ∈ [0,total) picks the first candidate whose
// cumulative weight exceeds r. When total is not a positive finite number, or
// the scan ends without a pick, the first unvisited index is returned.
// Requires at least one unvisited vertex.
//
// Complexity: O(n).
func selectNext(tauRow, etaRow []float64, visited []bool, weights []float64, alpha float64, rng *rand.Rand) int {
	var (
		j     int
		w     float64
		total float64
	)
	for j = range visited {
		if visited[j] {
			weights[j] = 0
			continue
		}
		w = powFast(tauRow[j], alpha) * etaRow[j]
		weights[j] = w
		total += w
	}

	if total > 0 && !math.IsInf(total, 1) {
		r := rng.Float64() * total
		var cum float64
		for j = range visited {
			if visited[j] {
				continue
			}
			cum += weights[j]
			if r < cum {
				return j
			}
		}
	}

	return firstUnvisited(visited)
}

// firstUnvisited is the deterministic roulette fallback: the lowest unvisited
// index, or -1 when every vertex is visited.
func firstUnvisited(visited []bool) int {
	for j, v := range visited {
		if !v {
			return j
		}
	}

	return -1
}

// powFast avoids math.Pow for the common exponents 0, 1 and 2.
func powFast(x, p float64) float64 {
	switch p {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	default:
		return math.Pow(x, p)
	}
}

// Done reports whether the colony has terminated.
func (c *Colony) Done() bool { return c.done }

// Iteration returns the number of completed iterations.
func (c *Colony) Iteration() int { return c.iteration }

// BestLength returns the best length found so far (+Inf before the first Step).
func (c *Colony) BestLength() float64 { return c.bestLen }

// Pheromone returns a copy of the current pheromone matrix, or nil for n == 1.
func (c *Colony) Pheromone() *matrix.Dense {
	if c.tau == nil {
		return nil
	}

	return c.tau.tau.Clone()
}

// Result packages the best tour, rotated to start at Options.StartVertex.
func (c *Colony) Result() Result {
	res := Result{
		Algo:          AntColony,
		Length:        round1e9(c.bestLen),
		Iterations:    c.iteration,
		BestIteration: c.bestIter,
		Stopped:       c.stopped,
	}
	if c.best != nil {
		res.Tour, _ = RotateToStart(c.best, c.opts.StartVertex) // start is always in a full tour
	}

	return res
}

// SolveACO runs a colony to termination and returns its best tour.
//
// Errors: validation sentinels from validate.go; ErrInvalidTour only with
// Options.CheckInvariants.
func SolveACO(dist *DistanceMatrix, opts Options) (Result, error) {
	c, err := NewColony(dist, opts)
	if err != nil {
		return Result{}, err
	}

	var done bool
	for !done {
		if done, err = c.Step(); err != nil {
			return Result{}, err
		}
	}

	return c.Result(), nil
}
