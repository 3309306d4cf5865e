// Package tsp - unified dispatcher for the solvers.
//
// This file provides the canonical entry points:
//
//   - Solve: accept the loaded points, build the distance cache once, then
//     delegate to SolveWithMatrix.
//   - SolveWithMatrix: accept a prebuilt cache and route to the requested
//     algorithm (AntColony / Genetic / NearestNeighbor), applying the optional
//     2-opt post-pass.
//
// Design principles:
//   - Deterministic: the seed is routed to the engines; no time-based randomness.
//   - Strict sentinels: only errors from types.go, wrapped with context where useful.
//   - Stable cost: all returned lengths are rounded to 1e−9.
package tsp

import "github.com/katalvlaran/startour/geom"

// Solve builds the distance cache for points and runs SolveWithMatrix.
//
// Errors: ErrNoPoints, ErrNonFinite from the cache; everything SolveWithMatrix returns.
//
// Complexity: O(n²) for the cache plus the chosen algorithm.
func Solve(points []geom.Point, opts Options) (Result, error) {
	dist, err := NewDistanceMatrix(points)
	if err != nil {
		return Result{}, err
	}

	return SolveWithMatrix(dist, opts)
}

// SolveWithMatrix routes to the solver chosen by opts.Algo. With
// opts.LocalSearch the returned tour is polished by TwoOpt; Iterations,
// BestIteration and Stopped still describe the underlying engine run.
//
// Complexity: per algorithm:
//   - AntColony:       O(iter · ants · n²).
//   - Genetic:         O(gen · pop · n).
//   - NearestNeighbor: O(n²).
//   - 2-opt post-pass: O(moves · n²).
func SolveWithMatrix(dist *DistanceMatrix, opts Options) (Result, error) {
	var (
		res Result
		err error
	)
	switch opts.Algo {
	case AntColony:
		res, err = SolveACO(dist, opts)
	case Genetic:
		res, err = SolveGA(dist, opts)
	case NearestNeighbor:
		res, err = SolveNN(dist, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	if opts.LocalSearch && len(res.Tour) >= 4 {
		tour, length, err := TwoOpt(dist, res.Tour, opts.TwoOptMaxMoves)
		if err != nil {
			return Result{}, err
		}
		if length < res.Length {
			res.Tour, res.Length = tour, length
		}
	}
	if opts.CheckInvariants {
		if err = ValidatePermutation(res.Tour, dist.n); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}
