// Package builder assembles graph-like ZX diagrams from circuit-style
// constructors, for fixtures, benchmarks and the generate command.
//
// A build starts from one input wire per qubit, each attached by a plain
// edge to a fresh Z spider (the qubit's frontier). Constructors then grow
// the diagram:
//
//   - J(q, α):   new spider of phase α joined to q's frontier by a Hadamard
//     edge; it becomes the frontier.
//   - CZ(a, b):  Hadamard edge between the frontiers of a and b (smart
//     insertion, so a repeated CZ cancels).
//   - Phase(q, α): adds α to q's frontier.
//   - RandomLayers(depth): depth rounds of J on every qubit with a random
//     phase, then CZ on neighbouring qubits with probability p.
//
// Outputs are attached last, one plain edge per frontier. Every diagram built
// this way has a causal flow along the qubit lines.
//
// Configuration primitives:
//   - BuilderOption: mutates builderConfig before construction.
//   - WithSeed / WithRand: RNG for RandomLayers (required).
//   - WithCZProbability: CZ density of RandomLayers.
//   - WithPhaseDenominator: RandomLayers phases are k·π/den.
//
// Guarantees:
//   - Determinism: same qubit count, options, seed and constructor order give
//     identical diagrams, vertex indices included.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors and never panic.
package builder
