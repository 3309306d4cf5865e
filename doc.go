// Package startour finds short closed tours through sets of points in 3D
// space: the travelling salesman problem on a Euclidean metric, attacked
// with population metaheuristics.
//
// What is in the box?
//
//	• Ant colony optimization: pheromone + visibility roulette, global
//	  evaporation, length-proportional deposit.
//	• Genetic algorithm: binary tournament, ordered crossover, reversal and
//	  adjacent-swap mutation, optional elitism.
//	• Nearest-neighbour greedy baseline and a 2-opt polish pass.
//	• Deterministic runs: one seed fixes every random draw, whatever the
//	  number of worker goroutines.
//
// Packages:
//
//	geom/    : Point and the Euclidean distance
//	matrix/  : row-major Dense container backing distance and pheromone tables
//	tsp/     : distance cache, tour evaluation, ACO / GA / NN engines, Solve
//	pointio/ : "x y z" point loader/writer, tour parser
//	builder/ : synthetic point sets (cloud, circle, helix, grid, sphere)
//	report/  : progress sinks: logrus lines and convergence charts
//	sweep/   : parameter grids run against one distance cache
//	cmd/startour: CLI: solve, sweep, eval, gen
//
// Quick example:
//
//	pts, _ := pointio.LoadFile("stars.txt", pointio.Options{})
//	opts := tsp.DefaultOptions()          // ACO, ALPHA=1 BETA=2 RHO=0.5 Q=100
//	opts.MaxIterations = 500
//	res, err := tsp.Solve(pts, opts)
//	fmt.Println(res.Length, res.Tour)
//
// The library packages never log and never panic on user input; failures
// come back as sentinel errors matched with errors.Is.
package startour
