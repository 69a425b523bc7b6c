// File: validate.go
// Role: Static checks of a rule set that can be made before compilation.

package rules

import (
	"fmt"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// Validate checks the load-time invariants of a rule set:
//   - both sides carry a diagram;
//   - the LHS has at least one orientation, and every orientation resolves;
//   - every RHS boundary has the LHS boundary's length;
//   - every RHS edge between two spiders is Hadamard;
//   - every unfused index names an RHS spider;
//   - every RHS orientation resolves.
//
// The returned error names the failing RHS.
func (rs *RewriteRuleSet) Validate() error {
	lhs := rs.LHS()
	if lhs.G.Diagram == nil {
		return fmt.Errorf("lhs: %w", ErrMissingDiagram)
	}
	if len(lhs.Ios) == 0 {
		return fmt.Errorf("lhs: %w", ErrNoOrientation)
	}
	if _, err := Orientations(lhs); err != nil {
		return fmt.Errorf("lhs: %w", err)
	}
	lb, err := Boundary(lhs.G)
	if err != nil {
		return fmt.Errorf("lhs: %w", err)
	}

	for i := range rs.Rhss {
		rhs := &rs.Rhss[i]
		if err = validateRhs(rhs, len(lb)); err != nil {
			return fmt.Errorf("rhs %d: %w", i, err)
		}
	}

	return nil
}

func validateRhs(rhs *RewriteRhs, arity int) error {
	if rhs.G.Diagram == nil {
		return ErrMissingDiagram
	}
	rb, err := Boundary(&rhs.G)
	if err != nil {
		return err
	}
	if len(rb) != arity {
		return fmt.Errorf("boundary has %d vertices, lhs has %d: %w", len(rb), arity, ErrArityMismatch)
	}
	if _, err = Orientations(rhs); err != nil {
		return err
	}
	d := rhs.G.Diagram
	for _, e := range d.Edges() {
		if d.IsBoundary(e.Source) || d.IsBoundary(e.Target) {
			continue
		}
		if e.Type != diagram.Hadamard {
			return fmt.Errorf("edge %d-%d is %s: %w", e.Source, e.Target, e.Type, ErrIllegalEdge)
		}
	}
	for _, list := range [][]int{rhs.Unfused, rhs.Unfused1, rhs.Unfused2} {
		for _, idx := range list {
			v := diagram.V(idx)
			if !d.HasVertex(v) || d.IsBoundary(v) {
				return fmt.Errorf("index %d: %w", idx, ErrBadUnfused)
			}
		}
	}

	return nil
}
