// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestDefaults verifies the deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.czProb != DefaultCZProbability {
		t.Errorf("default czProb: expected %v, got %v", DefaultCZProbability, cfg.czProb)
	}
	if cfg.phaseDen != DefaultPhaseDenominator {
		t.Errorf("default phaseDen: expected %d, got %d", DefaultPhaseDenominator, cfg.phaseDen)
	}
}

// TestRNGOptions verifies reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. Same seed, same stream.
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	if a.rng.Int63() != b.rng.Int63() {
		t.Error("WithSeed: equal seeds produced different streams")
	}

	// 2. WithRand after WithSeed wins.
	r := rand.New(rand.NewSource(7))
	c := newBuilderConfig(WithSeed(1), WithRand(r))
	if c.rng != r {
		t.Error("WithRand: expected the provided *rand.Rand")
	}
}

// TestOptionPanics verifies option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)":            func() { WithRand(nil) },
		"WithCZProbability(-0.1)":  func() { WithCZProbability(-0.1) },
		"WithCZProbability(1.5)":   func() { WithCZProbability(1.5) },
		"WithPhaseDenominator(0)":  func() { WithPhaseDenominator(0) },
		"WithPhaseDenominator(-4)": func() { WithPhaseDenominator(-4) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}

	cfg := newBuilderConfig(WithCZProbability(1), WithPhaseDenominator(2))
	if cfg.czProb != 1 || cfg.phaseDen != 2 {
		t.Errorf("options not applied: %+v", cfg)
	}
}
