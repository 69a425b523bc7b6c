// File: side.go
// Role: Operations shared by both sides of a rule: boundary order and
// orientation translation.
// Determinism:
//   - Boundary order is inputs then outputs, each in list order.

package rules

import (
	"fmt"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// RuleSide is either side of a rewrite rule.
type RuleSide interface {
	// Decoded returns the side's diagram and name table.
	Decoded() *DecodedDiagram
	// Orientations returns the admissible boundary orientations.
	Orientations() []RewriteIos
}

// Decoded implements RuleSide.
func (l RewriteLhs) Decoded() *DecodedDiagram { return l.G }

// Orientations implements RuleSide.
func (l RewriteLhs) Orientations() []RewriteIos { return l.Ios }

// Decoded implements RuleSide.
func (r *RewriteRhs) Decoded() *DecodedDiagram { return &r.G }

// Orientations implements RuleSide.
func (r *RewriteRhs) Orientations() []RewriteIos { return r.Ios }

// Orientation is a RewriteIos resolved to vertex indices.
type Orientation struct {
	Inputs  []diagram.V
	Outputs []diagram.V
}

// Translate resolves the orientation's names in dd. Every name must denote a
// boundary vertex.
func (io RewriteIos) Translate(dd *DecodedDiagram) (Orientation, error) {
	var o Orientation
	var err error
	if o.Inputs, err = resolveBoundaries(dd, io.Inputs); err != nil {
		return Orientation{}, err
	}
	if o.Outputs, err = resolveBoundaries(dd, io.Outputs); err != nil {
		return Orientation{}, err
	}

	return o, nil
}

func resolveBoundaries(dd *DecodedDiagram, names []string) ([]diagram.V, error) {
	if dd == nil || dd.Diagram == nil {
		return nil, ErrMissingDiagram
	}
	out := make([]diagram.V, 0, len(names))
	for _, n := range names {
		v, err := dd.VertexByName(n)
		if err != nil {
			return nil, err
		}
		if !dd.Diagram.IsBoundary(v) {
			return nil, fmt.Errorf("%q: %w", n, ErrBadOrientation)
		}
		out = append(out, v)
	}

	return out, nil
}

// Boundary returns the unique spider neighbour of each input, then of each
// output, of dd's own diagram. The order does not depend on any orientation.
//
// Errors:
//   - ErrMissingDiagram: dd or its diagram is nil.
//   - ErrBoundaryArity: a boundary vertex has zero or several neighbours.
func Boundary(dd *DecodedDiagram) ([]diagram.V, error) {
	if dd == nil || dd.Diagram == nil {
		return nil, ErrMissingDiagram
	}
	d := dd.Diagram
	bs := append(d.Inputs(), d.Outputs()...)
	out := make([]diagram.V, 0, len(bs))
	for _, b := range bs {
		nbrs := d.MustNeighbors(b)
		if len(nbrs) != 1 {
			name, _ := dd.NameOf(b)
			return nil, fmt.Errorf("boundary %q has %d neighbours: %w", name, len(nbrs), ErrBoundaryArity)
		}
		out = append(out, nbrs[0])
	}

	return out, nil
}

// Orientations translates every orientation of side.
func Orientations(side RuleSide) ([]Orientation, error) {
	ios := side.Orientations()
	out := make([]Orientation, 0, len(ios))
	for i, io := range ios {
		o, err := io.Translate(side.Decoded())
		if err != nil {
			return nil, fmt.Errorf("orientation %d: %w", i, err)
		}
		out = append(out, o)
	}

	return out, nil
}

// Instantiate returns a copy of side's diagram with its input and output
// lists replaced by o.
func Instantiate(dd *DecodedDiagram, o Orientation) *diagram.Diagram {
	p := dd.Diagram.Clone()
	p.SetInputs(o.Inputs)
	p.SetOutputs(o.Outputs)

	return p
}
