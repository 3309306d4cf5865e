// Command startour approximates shortest closed tours through 3D point sets
// with an ant colony, a genetic algorithm or a greedy baseline.
//
// Usage:
//
//	startour solve points.txt --algo aco --iterations 500 --plot run.png
//	startour solve points.txt --config run.toml --algo ga
//	startour sweep points.txt --config sweep.toml
//	startour eval points.txt --tour "0 4 2 1 3"
//	startour gen --shape sphere --n 200 --out points.txt
//
// Points are read one per line as "x y z"; extra columns are ignored.
// Logs go to stderr, results to stdout.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
