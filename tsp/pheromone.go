package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/startour/matrix"
)

// pheromoneMatrix is the colony's reinforcement state. It is owned by a single
// Colony and only written between construction phases (after the worker
// barrier), so ants read a stable snapshot during an iteration.
type pheromoneMatrix struct {
	tau  *matrix.Dense
	rows [][]float64
}

// newPheromoneMatrix allocates an n×n matrix filled with init.
//
// Complexity: O(n²).
func newPheromoneMatrix(n int, init float64) (*pheromoneMatrix, error) {
	tau, err := matrix.NewSquare(n, init)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, n)

	var i int
	for i = 0; i < n; i++ {
		rows[i], _ = tau.Row(i)
	}

	return &pheromoneMatrix{tau: tau, rows: rows}, nil
}

// evaporate scales every entry by (1-rho). With rho ∈ [0,1] the factor is
// non-negative, so entries stay ≥ 0.
//
// Complexity: O(n²).
func (p *pheromoneMatrix) evaporate(rho float64) {
	p.tau.Scale(1 - rho)
}

// deposit adds amount on every edge of the closed tour, interior edges and the
// closing edge alike, in both directions (the metric is symmetric).
// Returns ErrDimensionMismatch when a tour index is outside the matrix.
//
// Complexity: O(n).
func (p *pheromoneMatrix) deposit(tour []int, amount float64) error {
	n := len(tour)
	if n < 2 || amount <= 0 {
		return nil
	}

	var (
		i, a, b int
		err     error
	)
	for i = 0; i < n; i++ {
		a = tour[i]
		b = tour[(i+1)%n]
		if err = p.tau.AddAt(a, b, amount); err != nil {
			return fmt.Errorf("deposit: %w: %v", ErrDimensionMismatch, err)
		}
		if err = p.tau.AddAt(b, a, amount); err != nil {
			return fmt.Errorf("deposit: %w: %v", ErrDimensionMismatch, err)
		}
	}

	return nil
}

// bounds returns the smallest and largest off-diagonal intensity. A narrow
// max/min ratio means the trails still carry little information; a wide one
// means the colony is converging on a few edges.
//
// Complexity: O(n²).
func (p *pheromoneMatrix) bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	p.tau.Do(func(i, j int, v float64) bool {
		if i == j {
			return true
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		return true
	})

	return lo, hi
}
