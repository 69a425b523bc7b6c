// Package rewrite compiles rule sets into a pattern index, enumerates the
// candidate rewrites of a target diagram and applies a chosen candidate by
// graph surgery on a private copy of the target.
//
// Errors:
//
//	ErrNoFlow        - the target diagram has no causal flow.
//	ErrPatternNoFlow - an LHS orientation has no causal flow (malformed rule file).
//	ErrInvariant     - a compiled rule or candidate violates an internal invariant.
//	ErrFlowLost      - WithFlowCheck is set and the rewritten diagram has no causal flow.
//	ErrMetricsRegistration - the WithMetrics registry rejected a collector.
//
// Rule validation errors (arity, illegal edges, unfused indices) are the
// rules package sentinels, wrapped with the rule set index.
package rewrite

import (
	"errors"

	"github.com/katalvlaran/zxrewrite/diagram"
	"github.com/katalvlaran/zxrewrite/matcher"
)

// Sentinel errors.
var (
	// ErrNoFlow indicates a target diagram without causal flow. It wraps causal.ErrNoFlow.
	ErrNoFlow = errors.New("rewrite: diagram has no causal flow")

	// ErrPatternNoFlow indicates a rule orientation whose LHS has no causal flow.
	ErrPatternNoFlow = errors.New("rewrite: rule orientation has no causal flow")

	// ErrInvariant indicates a violated compile-time invariant discovered later.
	ErrInvariant = errors.New("rewrite: invariant violated")

	// ErrFlowLost indicates a rewrite result without causal flow.
	ErrFlowLost = errors.New("rewrite: result has no causal flow")

	// ErrMetricsRegistration indicates a collector the metrics registry refused.
	ErrMetricsRegistration = errors.New("rewrite: metrics registration failed")
)

// Rewrite is one candidate: a match in a target diagram paired with one RHS
// alternative of the matched rule set.
//
// Vertices named Lhs* are target vertices; Rhs* and Unfused* are vertices of
// Rhs. Rhs is shared by every candidate of the same alternative and must not
// be mutated.
type Rewrite struct {
	LhsBoundary []diagram.V
	LhsInterior []diagram.V
	RhsBoundary []diagram.V
	Rhs         *diagram.Diagram

	RuleSet  int               // index of the rule set in the compiled input
	RhsIndex int               // index of the alternative within the rule set
	Pattern  matcher.PatternID // pattern that produced the match

	// Reduction is the rule author's estimate; Result.CostDelta is measured.
	Reduction int

	Unfused  []diagram.V
	Unfused1 []diagram.V
	Unfused2 []diagram.V
}

// Result is the outcome of Apply.
type Result struct {
	// Diagram is the rewritten copy; the input diagram is untouched.
	Diagram *diagram.Diagram
	// CostDelta is metric(Diagram) - metric(input).
	CostDelta int
	// Reduction is copied from the Rewrite.
	Reduction int
	// VertexMap sends every materialised RHS vertex to its vertex in Diagram.
	VertexMap map[diagram.V]diagram.V
	// Unfused lists translated to Diagram vertices.
	Unfused  []diagram.V
	Unfused1 []diagram.V
	Unfused2 []diagram.V
}

// rhsEntry is one compiled RHS alternative.
type rhsEntry struct {
	d         *diagram.Diagram
	boundary  []diagram.V
	reduction int
	unfused   [3][]diagram.V
}

// group is the RHS alternatives of one rule set.
type group struct {
	set  int
	rhss []rhsEntry
}
