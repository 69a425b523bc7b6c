// SPDX-License-Identifier: MIT
// Package: zxrewrite/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a build by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCZProbability sets the per-round CZ probability of RandomLayers.
// Panics if p is outside [MinProbability, MaxProbability].
func WithCZProbability(p float64) BuilderOption {
	if p < MinProbability || p > MaxProbability {
		panic("builder: WithCZProbability(p outside [0,1])")
	}
	return func(c *builderConfig) {
		c.czProb = p
	}
}

// WithPhaseDenominator sets the phase grid of RandomLayers to multiples of π/den.
// den = 1 draws from {0, π}; den = 2 adds Clifford phases; den = 4 adds T phases.
// Panics if den < 1.
func WithPhaseDenominator(den int64) BuilderOption {
	if den < 1 {
		panic("builder: WithPhaseDenominator(den<1)")
	}
	return func(c *builderConfig) {
		c.phaseDen = den
	}
}
