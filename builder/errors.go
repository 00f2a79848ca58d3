// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w ("Ring: n=2 < min=3: ...").
//   • Runtime code never panics; option constructors (WithX) may.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrGraphTooSmall indicates the constructor needs more nodes than the
// target graph has.
var ErrGraphTooSmall = errors.New("builder: graph has too few nodes")

// ErrConstructFailed indicates a construction problem that is not a
// parameter error (nil constructor, rejected link, non-positive capacity draw).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates an unrecognised generator name.
var ErrUnknownTopology = errors.New("builder: unknown topology")
