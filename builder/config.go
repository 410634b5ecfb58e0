// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng       = nil   (generators that need randomness return ErrNeedRandSource)
//   • side      = 1000.0
//   • maxWeight = 100

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Side of the sampling square for Points.
	side float64

	// Random edge weights are integers in [1..maxWeight].
	maxWeight int
}

const (
	defaultSide      = 1000.0 // Points square side
	defaultMaxWeight = 100    // random weight ceiling
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		side:      defaultSide,
		maxWeight: defaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one random integer weight in [1..maxWeight].
func (c builderConfig) weight() float64 {
	return float64(1 + c.rng.Intn(c.maxWeight))
}
