// SPDX-License-Identifier: MIT
// File: api.go
// Role: Boundary ordering, diagnostic snapshots and structural checks.
// Determinism:
//   - Inputs()/Outputs() return copies in their stored order.
//   - CheckNormalForm() scans vertices in ascending index order and reports the first violation.
//   - Equal() compares by index; it is exact identity, not isomorphism.
// Concurrency:
//   - None; a Diagram is owned by a single goroutine.

package diagram

import "fmt"

// Inputs returns a copy of the ordered input list.
func (d *Diagram) Inputs() []V { return append([]V(nil), d.inputs...) }

// Outputs returns a copy of the ordered output list.
func (d *Diagram) Outputs() []V { return append([]V(nil), d.outputs...) }

// SetInputs replaces the input list with a copy of vs.
func (d *Diagram) SetInputs(vs []V) { d.inputs = append([]V(nil), vs...) }

// SetOutputs replaces the output list with a copy of vs.
func (d *Diagram) SetOutputs(vs []V) { d.outputs = append([]V(nil), vs...) }

// Stats is a read-only snapshot of a diagram's sizes.
type Stats struct {
	Vertices      int // total vertices
	Boundaries    int // vertices of type Boundary
	ZSpiders      int // vertices of type Z
	XSpiders      int // vertices of type X
	Edges         int // total edges
	SimpleEdges   int // edges of type Simple
	HadamardEdges int // edges of type Hadamard
	Inputs        int // len(Inputs())
	Outputs       int // len(Outputs())
}

// Stats counts vertices and edges by type.
// Complexity: O(V+E)
func (d *Diagram) Stats() Stats {
	s := Stats{
		Vertices: len(d.verts),
		Edges:    d.numEdges,
		Inputs:   len(d.inputs),
		Outputs:  len(d.outputs),
	}
	for _, vd := range d.verts {
		switch vd.ty {
		case Boundary:
			s.Boundaries++
		case Z:
			s.ZSpiders++
		case X:
			s.XSpiders++
		}
	}
	for v, nbrs := range d.adj {
		for u, ty := range nbrs {
			if v >= u {
				continue
			}
			if ty == Simple {
				s.SimpleEdges++
			} else {
				s.HadamardEdges++
			}
		}
	}

	return s
}

// CheckNormalForm reports the first violation of the graph-like normal form:
//   - every boundary vertex has exactly one edge;
//   - every edge touching a boundary vertex is Simple;
//   - every edge strictly between two spiders is Hadamard.
//
// The returned error wraps ErrNotNormalForm.
// Complexity: O(V log V + E)
func (d *Diagram) CheckNormalForm() error {
	for _, v := range d.Vertices() {
		vb := d.verts[v].ty == Boundary
		if vb && len(d.adj[v]) != 1 {
			return fmt.Errorf("boundary %d has degree %d: %w", v, len(d.adj[v]), ErrNotNormalForm)
		}
		for _, u := range d.MustNeighbors(v) {
			if u < v {
				continue
			}
			ty := d.adj[v][u]
			ub := d.verts[u].ty == Boundary
			switch {
			case (vb || ub) && ty != Simple:
				return fmt.Errorf("boundary edge %d-%d is %s: %w", v, u, ty, ErrNotNormalForm)
			case !vb && !ub && ty != Hadamard:
				return fmt.Errorf("interior edge %d-%d is %s: %w", v, u, ty, ErrNotNormalForm)
			}
		}
	}

	return nil
}

// Equal reports whether d and o have the same vertices (index, type, phase),
// the same edges and the same boundary lists.
// Complexity: O(V+E)
func (d *Diagram) Equal(o *Diagram) bool {
	if len(d.verts) != len(o.verts) || d.numEdges != o.numEdges {
		return false
	}
	if !sameVs(d.inputs, o.inputs) || !sameVs(d.outputs, o.outputs) {
		return false
	}
	for v, vd := range d.verts {
		if od, ok := o.verts[v]; !ok || od != vd {
			return false
		}
		for u, ty := range d.adj[v] {
			if oty, ok := o.adj[v][u]; !ok || oty != ty {
				return false
			}
		}
	}

	return true
}

func sameVs(a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
