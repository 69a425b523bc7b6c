// File: compile.go
// Role: Rule set compilation into a pattern index and an arena of RHS groups.
// Determinism:
//   - Patterns are registered in rule set order, then orientation order.
// Concurrency:
//   - A CompiledRewriter is immutable after Compile; Rewrites and Apply may run
//     concurrently on different target diagrams.

package rewrite

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/zxrewrite/causal"
	"github.com/katalvlaran/zxrewrite/cost"
	"github.com/katalvlaran/zxrewrite/diagram"
	"github.com/katalvlaran/zxrewrite/matcher"
	"github.com/katalvlaran/zxrewrite/rules"
)

// CompiledRewriter is a compiled rule library.
type CompiledRewriter struct {
	m         *matcher.Matcher
	groups    []group
	byPattern []int // pattern ID -> index into groups
	cfg       config
	metrics   *metrics
}

// Compile validates every rule set and registers one pattern per LHS
// orientation. The rule sets are not retained; RHS diagrams are copied.
//
// Errors:
//   - rules validation sentinels, wrapped with "rule set i".
//   - ErrPatternNoFlow: an orientation of an LHS has no causal flow.
//   - matcher.ErrEmptyPattern: an LHS has no spiders.
//   - ErrMetricsRegistration: WithMetrics's registry rejects a collector.
func Compile(sets []rules.RewriteRuleSet, opts ...Option) (*CompiledRewriter, error) {
	cfg := newConfig(opts...)
	mx, err := newMetrics(cfg.registry)
	if err != nil {
		return nil, err
	}
	c := &CompiledRewriter{
		m:       matcher.New(),
		cfg:     cfg,
		metrics: mx,
	}
	for i := range sets {
		if err := c.compileSet(i, &sets[i]); err != nil {
			return nil, err
		}
	}
	c.metrics.patterns.Set(float64(c.m.Len()))
	cfg.logger.Debug("rules compiled",
		slog.Int("rule_sets", len(sets)),
		slog.Int("patterns", c.m.Len()),
		slog.String("metric", cfg.metric.Name()))

	return c, nil
}

func (c *CompiledRewriter) compileSet(i int, rs *rules.RewriteRuleSet) error {
	// Stage 1: static checks.
	if err := rs.Validate(); err != nil {
		return fmt.Errorf("rule set %d: %w", i, err)
	}
	lhs := rs.LHS()
	boundary, err := rules.Boundary(lhs.G)
	if err != nil {
		return fmt.Errorf("rule set %d: lhs: %w", i, err)
	}
	orients, err := rules.Orientations(lhs)
	if err != nil {
		return fmt.Errorf("rule set %d: lhs: %w", i, err)
	}

	// Stage 2: the RHS group.
	g := group{set: i, rhss: make([]rhsEntry, 0, len(rs.Rhss))}
	for j := range rs.Rhss {
		rhs := &rs.Rhss[j]
		rb, err := rules.Boundary(&rhs.G)
		if err != nil {
			return fmt.Errorf("rule set %d: rhs %d: %w", i, j, err)
		}
		g.rhss = append(g.rhss, rhsEntry{
			d:         rhs.G.Diagram.Clone(),
			boundary:  rb,
			reduction: rhs.Reduction,
			unfused:   [3][]diagram.V{toVs(rhs.Unfused), toVs(rhs.Unfused1), toVs(rhs.Unfused2)},
		})
	}
	gi := len(c.groups)
	c.groups = append(c.groups, g)

	// Stage 3: one pattern per orientation.
	for k, o := range orients {
		pd := rules.Instantiate(lhs.G, o)
		flow, err := causal.Compute(pd)
		if err == nil {
			err = flow.Verify(pd)
		}
		if err != nil {
			return fmt.Errorf("rule set %d, orientation %d: %w: %w", i, k, ErrPatternNoFlow, err)
		}
		p, err := matcher.NewPattern(pd, flow, boundary)
		if err != nil {
			return fmt.Errorf("rule set %d, orientation %d: %w", i, k, err)
		}
		id := c.m.Register(p)
		if int(id) != len(c.byPattern) {
			return fmt.Errorf("pattern %d registered as %d: %w", len(c.byPattern), id, ErrInvariant)
		}
		c.byPattern = append(c.byPattern, gi)
	}

	return nil
}

// Patterns returns the number of compiled patterns.
func (c *CompiledRewriter) Patterns() int { return c.m.Len() }

// RuleSets returns the number of compiled rule sets.
func (c *CompiledRewriter) RuleSets() int { return len(c.groups) }

// Metric returns the metric behind Result.CostDelta.
func (c *CompiledRewriter) Metric() cost.Metric { return c.cfg.metric }

func toVs(idx []int) []diagram.V {
	if len(idx) == 0 {
		return nil
	}
	out := make([]diagram.V, len(idx))
	for i, x := range idx {
		out[i] = diagram.V(x)
	}

	return out
}
