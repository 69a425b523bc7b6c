// File: methods_edges.go
// Role: Edge lifecycle: strict insertion, smart insertion, removal and queries.
// Determinism:
//   - Edges() returns edges sorted by (Source, Target) with Source < Target.
//   - AddEdgeSmart is a pure function of the current edge, the new edge type and
//     the two vertex types.
// Concurrency:
//   - None; a Diagram is owned by a single goroutine.

package diagram

import (
	"fmt"
	"sort"
)

// AddEdge inserts the edge s–t of type ty.
//
// Errors:
//   - ErrBadEdgeType: ty is neither Simple nor Hadamard.
//   - ErrVertexNotFound: s or t is missing.
//   - ErrSelfLoop: s == t.
//   - ErrEdgeExists: s and t are already adjacent.
//
// Complexity: O(1)
func (d *Diagram) AddEdge(s, t V, ty EdgeType) error {
	if err := d.checkEndpoints("AddEdge", s, t, ty); err != nil {
		return err
	}
	if s == t {
		return fmt.Errorf("AddEdge(%d,%d): %w", s, t, ErrSelfLoop)
	}
	if _, ok := d.adj[s][t]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", s, t, ErrEdgeExists)
	}
	d.setEdge(s, t, ty)

	return nil
}

// AddEdgeSmart inserts the edge s–t of type ty and resolves any parallel edge or
// self loop with the ZX fusion, Hopf and colour-change rules.
//
// With an existing edge of type old between spiders of the same colour:
//
//	old=Simple,   ty=Simple   → unchanged
//	old=Simple,   ty=Hadamard → π added to s
//	old=Hadamard, ty=Simple   → edge becomes Simple, π added to s
//	old=Hadamard, ty=Hadamard → edge removed
//
// Between spiders of different colours:
//
//	old=Simple,   ty=Simple   → edge removed
//	old=Simple,   ty=Hadamard → edge becomes Hadamard, π added to s
//	old=Hadamard, ty=Simple   → π added to s
//	old=Hadamard, ty=Hadamard → unchanged
//
// A Hadamard self loop adds π to s; a Simple self loop is dropped.
//
// Errors:
//   - ErrBadEdgeType, ErrVertexNotFound as for AddEdge.
//   - ErrParallelBoundaryEdge: a parallel edge or a self loop at a boundary vertex.
//
// Complexity: O(1)
func (d *Diagram) AddEdgeSmart(s, t V, ty EdgeType) error {
	if err := d.checkEndpoints("AddEdgeSmart", s, t, ty); err != nil {
		return err
	}
	st, tt := d.verts[s].ty, d.verts[t].ty

	// Stage 1: self loops.
	if s == t {
		if st == Boundary {
			return fmt.Errorf("AddEdgeSmart(%d,%d): %w", s, t, ErrParallelBoundaryEdge)
		}
		if ty == Hadamard {
			d.addPi(s)
		}
		return nil
	}

	// Stage 2: fresh edge.
	old, ok := d.adj[s][t]
	if !ok {
		d.setEdge(s, t, ty)
		return nil
	}

	// Stage 3: parallel edge.
	if st == Boundary || tt == Boundary {
		return fmt.Errorf("AddEdgeSmart(%d,%d): %w", s, t, ErrParallelBoundaryEdge)
	}
	if st == tt {
		switch {
		case old == Simple && ty == Hadamard:
			d.addPi(s)
		case old == Hadamard && ty == Simple:
			d.setEdge(s, t, Simple)
			d.addPi(s)
		case old == Hadamard && ty == Hadamard:
			d.unsetEdge(s, t)
		}
		return nil
	}
	switch {
	case old == Simple && ty == Simple:
		d.unsetEdge(s, t)
	case old == Simple && ty == Hadamard:
		d.setEdge(s, t, Hadamard)
		d.addPi(s)
	case old == Hadamard && ty == Simple:
		d.addPi(s)
	}

	return nil
}

// RemoveEdge deletes the edge s–t.
func (d *Diagram) RemoveEdge(s, t V) error {
	if _, ok := d.adj[s][t]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", s, t, ErrEdgeNotFound)
	}
	d.unsetEdge(s, t)

	return nil
}

// SetEdgeType changes the type of the existing edge s–t.
func (d *Diagram) SetEdgeType(s, t V, ty EdgeType) error {
	if !ty.Valid() {
		return fmt.Errorf("SetEdgeType(%d,%d): %w", s, t, ErrBadEdgeType)
	}
	if _, ok := d.adj[s][t]; !ok {
		return fmt.Errorf("SetEdgeType(%d,%d): %w", s, t, ErrEdgeNotFound)
	}
	d.setEdge(s, t, ty)

	return nil
}

// HasEdge reports whether s and t are adjacent.
func (d *Diagram) HasEdge(s, t V) bool {
	_, ok := d.adj[s][t]
	return ok
}

// EdgeType returns the type of the edge s–t and whether it exists.
func (d *Diagram) EdgeType(s, t V) (EdgeType, bool) {
	ty, ok := d.adj[s][t]
	return ty, ok
}

// Edges returns every edge once, with Source < Target, sorted by (Source, Target).
// Complexity: O(E log E)
func (d *Diagram) Edges() []Edge {
	out := make([]Edge, 0, d.numEdges)
	for s, nbrs := range d.adj {
		for t, ty := range nbrs {
			if s < t {
				out = append(out, Edge{Source: s, Target: t, Type: ty})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})

	return out
}

// NumEdges returns |E|.
func (d *Diagram) NumEdges() int { return d.numEdges }

func (d *Diagram) checkEndpoints(method string, s, t V, ty EdgeType) error {
	if !ty.Valid() {
		return fmt.Errorf("%s(%d,%d): %w", method, s, t, ErrBadEdgeType)
	}
	if _, ok := d.verts[s]; !ok {
		return fmt.Errorf("%s(%d,%d): %w", method, s, t, ErrVertexNotFound)
	}
	if _, ok := d.verts[t]; !ok {
		return fmt.Errorf("%s(%d,%d): %w", method, s, t, ErrVertexNotFound)
	}

	return nil
}

// setEdge writes both mirrored entries; counts the edge when it is new.
func (d *Diagram) setEdge(s, t V, ty EdgeType) {
	if _, ok := d.adj[s][t]; !ok {
		d.numEdges++
	}
	d.adj[s][t] = ty
	d.adj[t][s] = ty
}

func (d *Diagram) unsetEdge(s, t V) {
	delete(d.adj[s], t)
	delete(d.adj[t], s)
	d.numEdges--
}

func (d *Diagram) addPi(v V) {
	vd := d.verts[v]
	vd.phase = vd.phase.Add(Pi())
	d.verts[v] = vd
}
