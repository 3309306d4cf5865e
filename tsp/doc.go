// Package tsp provides population-based metaheuristics for the symmetric
// Travelling Salesman Problem over 3D points.
//
// Two engines share one distance cache, one tour evaluator and one
// termination policy:
//
//   - SolveACO: ant colony optimization (pheromone^α · visibility^β roulette,
//     global evaporation, Q/L deposit).
//
//   - Complexity: O(iter · ants · n²)
//
//   - Memory:     O(n² + ants · n)
//
//   - SolveGA: generational genetic algorithm (binary tournament, ordered
//     crossover, reversal / adjacent-swap mutation, optional elitism).
//
//   - Complexity: O(gen · pop · n)
//
//   - Memory:     O(pop · n)
//
// SolveNN is a greedy baseline and TwoOpt an optional polish.
//
// A tour is a permutation of 0..n-1 that starts at Options.StartVertex; the
// edge back to the first vertex is implicit. Given the same Options (Seed
// included) every solver returns the same Result on every run, whatever
// Options.Workers is.
//
// Use Solve for a slice of points, or NewDistanceMatrix once and
// SolveWithMatrix many times (as the sweep driver does). NewColony and
// NewEvolution expose the engines step by step.
package tsp
