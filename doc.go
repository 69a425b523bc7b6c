// Package zxrewrite is a rewrite engine for ZX diagrams that only proposes
// rewrites which keep the diagram's causal flow intact.
//
// A rule library lists rule sets: one left-hand side with its input/output
// orientations, and a group of interchangeable right-hand sides. The engine
// compiles every orientation into a flow-annotated pattern, finds
// flow-compatible matches in a target diagram, pairs each match with every
// right-hand side of its group and applies the chosen candidate by graph
// surgery on a copy of the target.
//
// Packages:
//
//	diagram/    ZX diagram graph: spiders, phases, edges, smart edge insertion
//	graphjson/  JSON graph document codec and phase literal parser
//	rules/      rule file model: named diagrams, orientations, right-hand sides
//	causal/     causal flow computation and verification
//	matcher/    pattern registry and flow-constrained subgraph matching
//	cost/       cost metrics (two-qubit gate count, spiders, edges, T count)
//	rewrite/    Compile, Rewrites, Apply
//	builder/    seeded construction of graph-like circuit diagrams
//
// Quick example (a single qubit wire with three spiders):
//
//	b0 ── s ━━ s ━━ s ── b1      ── simple edge, ━━ Hadamard edge
//
// has causal flow b0 → s → s → s → b1; a rule whose left-hand side is
// "s ━━ s" matches it twice.
//
// The zxrewrite command under cmd/ checks rule libraries, lists and
// evaluates candidates, applies one of them and generates random circuits.
//
//	go install github.com/katalvlaran/zxrewrite/cmd/zxrewrite@latest
package zxrewrite
