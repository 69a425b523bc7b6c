// Package cost scores diagrams. A rewrite's cost delta is the score of the
// rewritten diagram minus the score of the original, so lower is better.
//
// Errors:
//
//	ErrUnknownMetric - ByName was given a name no metric answers to.
package cost

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// ErrUnknownMetric indicates ByName found no metric with the requested name.
var ErrUnknownMetric = errors.New("cost: unknown metric")

// Metric assigns an integer cost to a diagram.
// Implementations must be safe for concurrent use.
type Metric interface {
	Name() string
	Cost(d *diagram.Diagram) int
}

// TwoQubitGateCount estimates the number of two-qubit gates needed to extract
// a circuit from a graph-like diagram with causal flow:
//
//	max(0, H(spider, spider) - spiders + outputs)
//
// Each qubit line of n spiders costs n-1 flow edges; every other Hadamard edge
// between spiders becomes one CZ.
type TwoQubitGateCount struct{}

// Name implements Metric.
func (TwoQubitGateCount) Name() string { return "2q" }

// Cost implements Metric.
// Complexity: O(V+E)
func (TwoQubitGateCount) Cost(d *diagram.Diagram) int {
	interiorEdges := 0
	for _, e := range d.Edges() {
		if e.Type == diagram.Hadamard && !d.IsBoundary(e.Source) && !d.IsBoundary(e.Target) {
			interiorEdges++
		}
	}
	s := d.Stats()
	spiders := s.ZSpiders + s.XSpiders
	if c := interiorEdges - spiders + s.Outputs; c > 0 {
		return c
	}

	return 0
}

// SpiderCount counts Z and X spiders.
type SpiderCount struct{}

// Name implements Metric.
func (SpiderCount) Name() string { return "spiders" }

// Cost implements Metric.
func (SpiderCount) Cost(d *diagram.Diagram) int {
	s := d.Stats()
	return s.ZSpiders + s.XSpiders
}

// EdgeCount counts edges of both types.
type EdgeCount struct{}

// Name implements Metric.
func (EdgeCount) Name() string { return "edges" }

// Cost implements Metric.
func (EdgeCount) Cost(d *diagram.Diagram) int { return d.NumEdges() }

// TCount counts spiders whose phase is not a multiple of π/2.
type TCount struct{}

// Name implements Metric.
func (TCount) Name() string { return "t" }

// Cost implements Metric.
func (TCount) Cost(d *diagram.Diagram) int {
	n := 0
	for _, v := range d.Vertices() {
		if d.IsBoundary(v) {
			continue
		}
		if p, _ := d.Phase(v); p.Den() >= 4 {
			n++
		}
	}

	return n
}

var registry = map[string]Metric{
	TwoQubitGateCount{}.Name(): TwoQubitGateCount{},
	SpiderCount{}.Name():       SpiderCount{},
	EdgeCount{}.Name():         EdgeCount{},
	TCount{}.Name():            TCount{},
}

// ByName returns the built-in metric called name.
func ByName(name string) (Metric, error) {
	if m, ok := registry[name]; ok {
		return m, nil
	}

	return nil, fmt.Errorf("%q (known: %v): %w", name, Names(), ErrUnknownMetric)
}

// Names lists the built-in metric names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
