// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownTopology indicates a topology name that Named does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
