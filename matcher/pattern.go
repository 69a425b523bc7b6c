// File: pattern.go
// Role: Pattern construction and its breadth-first search plan.
// Determinism:
//   - The plan starts from the lowest boundary vertex and visits neighbours ascending.

package matcher

import (
	"fmt"

	"github.com/katalvlaran/zxrewrite/causal"
	"github.com/katalvlaran/zxrewrite/diagram"
)

// Pattern is a diagram with a causal flow and an ordered boundary. Its spiders
// are matched; its boundary-type vertices only carry the flow across the edge
// of the pattern.
type Pattern struct {
	d          *diagram.Diagram
	flow       *causal.Flow
	boundary   []diagram.V // one entry per wire, may repeat
	onBoundary map[diagram.V]bool
	wires      []diagram.V // boundary-type vertices, ascending
	plan       []planStep
}

// NewPattern validates the boundary and builds the search plan.
//
// boundary has one entry per boundary wire, so a spider touching several
// wires is listed once for each of them.
//
// Errors:
//   - ErrNilFlow: flow is nil.
//   - ErrEmptyPattern: d has no spider.
//   - ErrBadBoundary: an entry is missing or boundary-type.
func NewPattern(d *diagram.Diagram, flow *causal.Flow, boundary []diagram.V) (*Pattern, error) {
	if flow == nil {
		return nil, ErrNilFlow
	}
	p := &Pattern{
		d:          d,
		flow:       flow,
		boundary:   append([]diagram.V(nil), boundary...),
		onBoundary: make(map[diagram.V]bool, len(boundary)),
	}
	for _, v := range boundary {
		if !d.HasVertex(v) || d.IsBoundary(v) {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrBadBoundary)
		}
		p.onBoundary[v] = true
	}
	for _, v := range d.Vertices() {
		if d.IsBoundary(v) {
			p.wires = append(p.wires, v)
		}
	}
	p.plan = buildPlan(d, p.boundary)
	if len(p.plan) == 0 {
		return nil, ErrEmptyPattern
	}

	return p, nil
}

// Diagram returns the pattern diagram. Callers must not mutate it.
func (p *Pattern) Diagram() *diagram.Diagram { return p.d }

// Flow returns the pattern's causal flow.
func (p *Pattern) Flow() *causal.Flow { return p.flow }

// Boundary returns a copy of the boundary order.
func (p *Pattern) Boundary() []diagram.V { return append([]diagram.V(nil), p.boundary...) }

// queueItem pairs a spider with the spider it was discovered from.
type queueItem struct {
	v      diagram.V
	parent diagram.V
	root   bool
}

// buildPlan orders the spiders of d breadth-first over spider–spider edges.
// Each component is seeded from its lowest boundary vertex when it has one,
// so most steps are anchored to an already placed neighbour.
func buildPlan(d *diagram.Diagram, boundary []diagram.V) []planStep {
	var spiders []diagram.V
	for _, v := range d.Vertices() {
		if !d.IsBoundary(v) {
			spiders = append(spiders, v)
		}
	}
	seeds := append([]diagram.V(nil), boundary...)
	sortVs(seeds)
	seeds = append(seeds, spiders...)

	visited := make(map[diagram.V]bool, len(spiders))
	plan := make([]planStep, 0, len(spiders))
	for _, s := range seeds {
		if visited[s] {
			continue
		}
		// 1. Seed a new component.
		visited[s] = true
		queue := []queueItem{{v: s, root: true}}
		// 2. Drain it breadth-first.
		for len(queue) > 0 {
			item := queue[0]
			queue = queue[1:]
			plan = append(plan, planStep{v: item.v, anchor: item.parent, root: item.root})
			for _, u := range d.MustNeighbors(item.v) {
				if visited[u] || d.IsBoundary(u) {
					continue
				}
				visited[u] = true
				queue = append(queue, queueItem{v: u, parent: item.v})
			}
		}
	}

	return plan
}
