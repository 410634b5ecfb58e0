// SPDX-License-Identifier: MIT
// Package: lvtour/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig before it runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSide sets the side of the square Points samples from. Panics if side <= 0.
func WithSide(side float64) BuilderOption {
	if side <= 0 {
		panic("builder: WithSide(side<=0)")
	}
	return func(c *builderConfig) {
		c.side = side
	}
}

// WithMaxWeight sets the ceiling for random integer edge weights, drawn from
// [1..max]. Panics if max < 1.
func WithMaxWeight(max int) BuilderOption {
	if max < 1 {
		panic("builder: WithMaxWeight(max<1)")
	}
	return func(c *builderConfig) {
		c.maxWeight = max
	}
}
