// File: rewrites.go
// Role: Candidate enumeration.
// Determinism:
//   - Candidates follow match order (pattern ID, then search order), then RHS order.

package rewrite

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/zxrewrite/causal"
	"github.com/katalvlaran/zxrewrite/diagram"
)

// Rewrites returns every candidate rewrite of d: each flow-compatible match of
// each pattern, paired with each RHS alternative of the pattern's rule set.
// d is not modified. No ranking is applied. Every slice of a returned Rewrite
// is its own copy; only Rhs is shared.
//
// Errors:
//   - ErrNoFlow: d has no causal flow.
//   - ErrInvariant: a match boundary and an RHS boundary differ in length.
func (c *CompiledRewriter) Rewrites(d *diagram.Diagram) ([]Rewrite, error) {
	flow, err := causal.Compute(d)
	if err != nil {
		c.metrics.noFlow.Inc()
		return nil, fmt.Errorf("%w: %w", ErrNoFlow, err)
	}

	matches := c.m.FindMatches(d, flow)
	var out []Rewrite
	for _, mt := range matches {
		g := &c.groups[c.byPattern[mt.Pattern]]
		for j := range g.rhss {
			r := &g.rhss[j]
			if len(r.boundary) != len(mt.Boundary) {
				return nil, fmt.Errorf("rule set %d, rhs %d: match boundary %d, rhs boundary %d: %w",
					g.set, j, len(mt.Boundary), len(r.boundary), ErrInvariant)
			}
			out = append(out, Rewrite{
				LhsBoundary: append([]diagram.V(nil), mt.Boundary...),
				LhsInterior: append([]diagram.V(nil), mt.Interior...),
				RhsBoundary: append([]diagram.V(nil), r.boundary...),
				Rhs:         r.d,
				RuleSet:     g.set,
				RhsIndex:    j,
				Pattern:     mt.Pattern,
				Reduction:   r.reduction,
				Unfused:     append([]diagram.V(nil), r.unfused[0]...),
				Unfused1:    append([]diagram.V(nil), r.unfused[1]...),
				Unfused2:    append([]diagram.V(nil), r.unfused[2]...),
			})
		}
	}
	c.metrics.matches.Add(float64(len(matches)))
	c.metrics.candidates.Add(float64(len(out)))
	c.cfg.logger.Debug("candidates enumerated",
		slog.Int("vertices", d.NumVertices()),
		slog.Int("matches", len(matches)),
		slog.Int("candidates", len(out)))

	return out, nil
}
