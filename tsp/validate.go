// Package tsp - validation utilities shared by the solvers.
//
// This file contains small, side-effect free helpers that:
//  1. Validate Options (per algorithm, bounds, limits).
//  2. Validate distance matrices handed in from outside (shape, diagonal,
//     negativity, NaN/Inf, symmetry).
//  3. Validate the start vertex once n is known.
//
// No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"math"

	"github.com/katalvlaran/startour/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// Validate checks the options for internal consistency. Options for the
// algorithms not selected by Algo are ignored.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Workers < 0 {
		return ErrBadWorkers
	}
	if o.ReportEvery < 0 {
		return ErrBadReportEvery
	}
	if o.StartVertex < 0 {
		return ErrStartOutOfRange
	}
	if o.TwoOptMaxMoves < 0 {
		return ErrBadTwoOptMoves
	}

	switch o.Algo {
	case AntColony:
		if err := validateLoop(o); err != nil {
			return err
		}
		return validateACO(o.ACO)
	case Genetic:
		if err := validateLoop(o); err != nil {
			return err
		}
		return validateGA(o.GA)
	case NearestNeighbor:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// validateLoop checks the termination settings shared by iterative engines.
func validateLoop(o Options) error {
	if o.MaxIterations <= 0 {
		return ErrBadIterations
	}
	if math.IsNaN(o.TargetLength) || math.IsInf(o.TargetLength, 0) || o.TargetLength < 0 {
		return ErrBadTarget
	}

	return nil
}

// validateACO checks colony parameters. Rho==1 is accepted: the pheromone is
// fully erased every iteration and the roulette fallback keeps construction valid.
func validateACO(a ACOOptions) error {
	if a.Ants < 0 {
		return ErrBadAntCount
	}
	if !finiteNonNegative(a.Alpha) || !finiteNonNegative(a.Beta) {
		return ErrBadExponent
	}
	if math.IsNaN(a.Rho) || a.Rho < 0 || a.Rho > 1 {
		return ErrBadEvaporation
	}
	if !finiteNonNegative(a.Q) {
		return ErrBadDeposit
	}
	if !finiteNonNegative(a.InitialPheromone) {
		return ErrBadInitialPheromone
	}

	return nil
}

// validateGA checks population parameters.
func validateGA(g GAOptions) error {
	if g.PopulationSize < 2 {
		return ErrBadPopulation
	}
	if math.IsNaN(g.MutationRate) || g.MutationRate < 0 || g.MutationRate > 1 {
		return ErrBadMutationRate
	}
	switch g.Mutation {
	case MutateComposite, MutateReverse, MutateAdjacentSwap:
	default:
		return ErrBadMutationOperator
	}
	if g.Elitism < 0 || g.Elitism >= g.PopulationSize {
		return ErrBadElitism
	}

	return nil
}

// validateStartVertex verifies that start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// validateRun bundles the checks every public engine entry point performs.
func validateRun(dist *DistanceMatrix, opts Options) error {
	if dist == nil || dist.n == 0 {
		return ErrNoPoints
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	return validateStartVertex(dist.n, opts.StartVertex)
}

// validateDistMatrix performs full validation of an externally built matrix:
//   - non-nil, square, n >= 1,
//   - diagonal ≈ 0 (|a_ii| ≤ tol),
//   - no NaN/±Inf, no negative entries,
//   - |a_ij − a_ji| ≤ tol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(m matrix.Matrix, tol float64) (int, error) {
	if m == nil {
		return 0, ErrDimensionMismatch
	}
	if m.Rows() != m.Cols() {
		return 0, ErrDimensionMismatch
	}
	n := m.Rows()
	if n == 0 {
		return 0, ErrNoPoints
	}

	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij, err = m.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return 0, ErrNonFinite
			}
			if i == j {
				if math.Abs(aij) > tol {
					return 0, ErrNonZeroDiagonal
				}
				continue
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
			if j > i {
				aji, err = m.At(j, i)
				if err != nil {
					return 0, ErrDimensionMismatch
				}
				if math.Abs(aij-aji) > tol {
					return 0, ErrAsymmetry
				}
			}
		}
	}

	return n, nil
}

func finiteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
