// SPDX-License-Identifier: MIT
// Package: zxrewrite/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng      = nil                     (RandomLayers fails with ErrNeedRandSource)
//   • czProb   = DefaultCZProbability    (0.5)
//   • phaseDen = DefaultPhaseDenominator (4, i.e. multiples of π/4)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Probability of a CZ between neighbouring qubits per RandomLayers round.
	czProb float64
	// RandomLayers phases are k·π/phaseDen, k uniform in [0, 2·phaseDen).
	phaseDen int64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		czProb:   DefaultCZProbability,
		phaseDen: DefaultPhaseDenominator,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
