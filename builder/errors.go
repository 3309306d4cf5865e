// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewPoints indicates that a size parameter (n, nx, ny, nz, turns) is
// smaller than the constructor allows.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor (Cloud) or a
// non-zero jitter requires an RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNoConstructor indicates Build was called without constructors.
var ErrNoConstructor = errors.New("builder: no constructor")
