// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w and the method name.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested generator.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic generator ran without a
// *rand.Rand (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadPoint indicates a point coordinate that is NaN or infinite.
var ErrBadPoint = errors.New("builder: point coordinate is not finite")

// Method tags used as error prefixes.
const (
	methodPoints          = "Points"
	methodEuclidean       = "Euclidean"
	methodRandomConnected = "RandomConnected"
	methodComponents      = "Components"
)
