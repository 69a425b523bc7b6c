package causal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// Verify checks that f is a causal flow of d:
//   - every non-output vertex has a successor, and no output has one;
//   - no input is the successor of anything;
//   - v and f(v) are adjacent;
//   - the order generated by v ≺ f(v) and v ≺ w for w ∈ N(f(v)) \ {v} is acyclic.
//
// Errors wrap ErrInvalidFlow.
func (f *Flow) Verify(d *diagram.Diagram) error {
	isOutput := make(map[diagram.V]bool)
	for _, v := range d.Outputs() {
		isOutput[v] = true
	}
	for _, v := range d.Inputs() {
		if u, ok := f.pred[v]; ok {
			return fmt.Errorf("input %d is the successor of %d: %w", v, u, ErrInvalidFlow)
		}
	}
	for _, v := range d.Vertices() {
		s, ok := f.succ[v]
		switch {
		case isOutput[v] && ok:
			return fmt.Errorf("output %d has successor %d: %w", v, s, ErrInvalidFlow)
		case !isOutput[v] && !ok:
			return fmt.Errorf("vertex %d has no successor: %w", v, ErrInvalidFlow)
		case ok && !d.HasEdge(v, s):
			return fmt.Errorf("%d and its successor %d are not adjacent: %w", v, s, ErrInvalidFlow)
		}
	}
	if _, err := f.Order(d); err != nil {
		return err
	}

	return nil
}

// orderer holds the state of the three-colour DFS over the flow order.
type orderer struct {
	d     *diagram.Diagram
	f     *Flow
	state map[diagram.V]visitState
	order []diagram.V
}

// Order returns the vertices of d in an order compatible with the flow's
// partial order: v appears before f(v) and before every other neighbour of f(v).
// Ties are broken by index, so the result is deterministic.
//
// Errors:
//   - ErrInvalidFlow: the generated relation has a cycle.
//
// Complexity: O(V + Σ deg(f(v)))
func (f *Flow) Order(d *diagram.Diagram) ([]diagram.V, error) {
	verts := d.Vertices()
	o := &orderer{
		d:     d,
		f:     f,
		state: make(map[diagram.V]visitState, len(verts)),
		order: make([]diagram.V, 0, len(verts)),
	}
	// 1. Drive the DFS from every unvisited vertex.
	for _, v := range verts {
		if o.state[v] == white {
			if err := o.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 2. Reverse post-order.
	for i, j := 0, len(o.order)-1; i < j; i, j = i+1, j-1 {
		o.order[i], o.order[j] = o.order[j], o.order[i]
	}

	return o.order, nil
}

// after lists the vertices that must follow v, ascending.
func (o *orderer) after(v diagram.V) []diagram.V {
	s, ok := o.f.succ[v]
	if !ok {
		return nil
	}
	out := []diagram.V{s}
	for _, w := range o.d.MustNeighbors(s) {
		if w != v {
			out = append(out, w)
		}
	}
	sortVs(out)

	return out
}

func (o *orderer) visit(v diagram.V) error {
	// 1. Back edge: cycle.
	if o.state[v] == gray {
		return fmt.Errorf("cycle through %d: %w", v, ErrInvalidFlow)
	}
	// 2. Already done.
	if o.state[v] == black {
		return nil
	}
	// 3. Explore.
	o.state[v] = gray
	for _, w := range o.after(v) {
		if err := o.visit(w); err != nil {
			return err
		}
	}
	// 4. Finish.
	o.state[v] = black
	o.order = append(o.order, v)

	return nil
}

func sortVs(vs []diagram.V) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}
