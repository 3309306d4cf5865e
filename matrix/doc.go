// SPDX-License-Identifier: MIT

// Package matrix provides the square numeric containers used by the solvers.
//
// Dense is a row-major float64 matrix with a flat backing slice and
// bounds-checked accessors. The tsp package builds two of them per run:
//
//   - a distance matrix, filled once from the point set and read-only afterwards;
//   - a pheromone matrix, owned by the ant colony engine and rewritten between
//     iterations (Scale for evaporation, AddAt for deposition).
//
// Public accessors never panic on user input; they return the sentinel errors
// declared in errors.go, optionally wrapped with the method name and indices.
//
// Complexity quicksheet:
//   - NewDense / NewSquare: O(r*c) allocation.
//   - At, Set, AddAt, Row: O(1).
//   - Fill, Scale, Apply, Do, Clone: O(r*c).
package matrix
