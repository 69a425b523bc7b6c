// File: apply.go
// Role: Graph surgery for one candidate rewrite.
// Determinism:
//   - New vertices are created in ascending RHS index order; RHS edges are
//     reconnected in diagram.Edges order.
// Concurrency:
//   - Apply only reads the target and the shared RHS; all writes go to a clone.

package rewrite

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/zxrewrite/causal"
	"github.com/katalvlaran/zxrewrite/diagram"
)

// Apply performs rw on a copy of d and returns the copy with its cost delta.
//
// Steps:
//  1. Clone d.
//  2. Remove the match interior.
//  3. Splice: each target boundary vertex takes the type and phase of its
//     paired RHS boundary vertex.
//  4. Insert every other RHS spider as a new vertex.
//  5. Reconnect every RHS edge whose endpoints are both materialised, via
//     smart insertion so parallel edges merge or cancel.
//
// Edges of the target outside the interior are never removed, so wiring to
// the rest of the diagram and the input/output lists survive unchanged.
//
// Errors:
//   - ErrInvariant: boundary lengths differ, or an RHS edge between spiders
//     is not Hadamard.
//   - diagram.ErrVertexNotFound: rw does not belong to d.
//   - ErrFlowLost: WithFlowCheck is set and the result has no causal flow.
func (c *CompiledRewriter) Apply(rw Rewrite, d *diagram.Diagram) (*Result, error) {
	res, err := c.apply(rw, d)
	if err != nil {
		c.metrics.applyTotal.WithLabelValues(outcomeError).Inc()
		c.cfg.logger.Debug("rewrite failed",
			slog.Int("rule_set", rw.RuleSet),
			slog.Int("rhs", rw.RhsIndex),
			slog.String("error", err.Error()))
		return nil, err
	}
	c.metrics.applyTotal.WithLabelValues(outcomeOK).Inc()
	c.metrics.costDelta.Observe(float64(res.CostDelta))
	c.cfg.logger.Debug("rewrite applied",
		slog.Int("rule_set", rw.RuleSet),
		slog.Int("rhs", rw.RhsIndex),
		slog.Int("cost_delta", res.CostDelta))

	return res, nil
}

func (c *CompiledRewriter) apply(rw Rewrite, d *diagram.Diagram) (*Result, error) {
	if rw.Rhs == nil {
		return nil, fmt.Errorf("candidate without rhs: %w", ErrInvariant)
	}
	if len(rw.LhsBoundary) != len(rw.RhsBoundary) {
		return nil, fmt.Errorf("lhs boundary %d, rhs boundary %d: %w",
			len(rw.LhsBoundary), len(rw.RhsBoundary), ErrInvariant)
	}
	for _, v := range append(append([]diagram.V(nil), rw.LhsBoundary...), rw.LhsInterior...) {
		if !d.HasVertex(v) {
			return nil, fmt.Errorf("Apply(%d): %w", v, diagram.ErrVertexNotFound)
		}
	}
	rhs := rw.Rhs

	// 1. Private copy.
	g := d.Clone()

	// 2. Drop the interior with all its edges.
	for _, v := range rw.LhsInterior {
		if err := g.RemoveVertex(v); err != nil {
			return nil, fmt.Errorf("remove interior: %w", err)
		}
	}

	// 3. Splice the boundary.
	vmap := make(map[diagram.V]diagram.V, rhs.NumVertices())
	for i, r := range rw.RhsBoundary {
		l := rw.LhsBoundary[i]
		vmap[r] = l
		ty, ok := rhs.VertexType(r)
		if !ok {
			return nil, fmt.Errorf("rhs boundary %d: %w", r, ErrInvariant)
		}
		ph, _ := rhs.Phase(r)
		if err := g.SetVertexType(l, ty); err != nil {
			return nil, err
		}
		if err := g.SetPhase(l, ph); err != nil {
			return nil, err
		}
	}

	// 4. Materialise the RHS interior.
	for _, r := range rhs.Vertices() {
		if _, done := vmap[r]; done || rhs.IsBoundary(r) {
			continue
		}
		ty, _ := rhs.VertexType(r)
		ph, _ := rhs.Phase(r)
		vmap[r] = g.AddVertexWithPhase(ty, ph)
	}

	// 5. Reconnect.
	for _, e := range rhs.Edges() {
		s, sok := vmap[e.Source]
		t, tok := vmap[e.Target]
		if !sok || !tok {
			continue
		}
		if e.Type != diagram.Hadamard {
			return nil, fmt.Errorf("rhs edge %d-%d is %s: %w", e.Source, e.Target, e.Type, ErrInvariant)
		}
		if err := g.AddEdgeSmart(s, t, diagram.Hadamard); err != nil {
			return nil, fmt.Errorf("reconnect %d-%d: %w", s, t, err)
		}
	}

	if c.cfg.flowCheck {
		flow, err := causal.Compute(g)
		if err == nil {
			err = flow.Verify(g)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFlowLost, err)
		}
	}

	return &Result{
		Diagram:   g,
		CostDelta: c.cfg.metric.Cost(g) - c.cfg.metric.Cost(d),
		Reduction: rw.Reduction,
		VertexMap: vmap,
		Unfused:   translate(vmap, rw.Unfused),
		Unfused1:  translate(vmap, rw.Unfused1),
		Unfused2:  translate(vmap, rw.Unfused2),
	}, nil
}

// translate maps RHS vertices through vmap, dropping unmapped ones.
func translate(vmap map[diagram.V]diagram.V, vs []diagram.V) []diagram.V {
	if len(vs) == 0 {
		return nil
	}
	out := make([]diagram.V, 0, len(vs))
	for _, v := range vs {
		if w, ok := vmap[v]; ok {
			out = append(out, w)
		}
	}

	return out
}
