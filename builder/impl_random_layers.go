// SPDX-License-Identifier: MIT
// Package: zxrewrite/builder
//
// impl_random_layers.go - RandomLayers(depth) constructor.
//
// Model:
//   - Each round applies J(q, k·π/den) to every qubit q ascending, k drawn
//     uniformly from [0, 2·den).
//   - Then, for q ascending, CZ(q, q+1) with probability cfg.czProb.
//
// Determinism:
//   - Fixed draw order (phases first, then CZ trials) for a fixed seed.

package builder

import (
	"github.com/katalvlaran/zxrewrite/diagram"
)

// RandomLayers appends depth rounds of random J gates and neighbour CZs.
// Requires cfg.rng (WithSeed/WithRand).
// Complexity: O(depth·qubits).
func RandomLayers(depth int) Constructor {
	return func(c *circuit, cfg builderConfig) error {
		// 1) Validate parameters before any mutation.
		if err := validateMin(MethodRandomLayers, ErrBadDepth, depth, MinDepth); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomLayers, ErrNeedRandSource, "depth=%d", depth)
		}

		// 2) Rounds.
		for r := 0; r < depth; r++ {
			for q := 0; q < c.qubits(); q++ {
				k := cfg.rng.Int63n(2 * cfg.phaseDen)
				if err := J(q, diagram.NewPhase(k, cfg.phaseDen))(c, cfg); err != nil {
					return err
				}
			}
			for q := 0; q+1 < c.qubits(); q++ {
				if cfg.rng.Float64() < cfg.czProb {
					if err := CZ(q, q+1)(c, cfg); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
