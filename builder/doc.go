// SPDX-License-Identifier: MIT

// Package builder generates deterministic 3D point sets for solver fixtures,
// benchmarks and the CLI "gen" command.
//
// One orchestrator, Build(opts, cons...), resolves functional options into an
// immutable config and concatenates the points produced by each Constructor,
// renumbering IDs 0..n-1 in emission order.
//
// Constructors:
//   - Cloud(n)        : uniform points in the cube [0, scale)³ (needs RNG).
//   - Circle(n)       : regular n-gon of radius scale in the z=0 plane.
//   - Helix(n, turns) : n points on a helix of radius scale and pitch scale.
//   - Grid(nx, ny, nz): lattice with spacing scale.
//   - Sphere(n)       : Fibonacci sphere of radius scale.
//
// Every constructor honours WithCenter (translation) and WithJitter (Gaussian
// noise, needs RNG). Same options, seed and constructor order ⇒ identical
// points.
package builder
