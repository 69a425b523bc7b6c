// File: methods_vertices.go
// Role: Vertex lifecycle and attribute accessors.
// Determinism:
//   - AddVertex hands out indices in increasing order; removed indices are never reused.
//   - Vertices() returns indices sorted ascending.
// Concurrency:
//   - None; a Diagram is owned by a single goroutine.

package diagram

import (
	"fmt"
	"sort"
)

// AddVertex adds a vertex of type t with phase 0 and returns its index.
// Complexity: O(1)
func (d *Diagram) AddVertex(t VertexType) V {
	return d.AddVertexWithPhase(t, Phase{})
}

// AddVertexWithPhase adds a vertex of type t with phase p and returns its index.
// Complexity: O(1)
func (d *Diagram) AddVertexWithPhase(t VertexType, p Phase) V {
	v := d.nextV
	d.nextV++
	d.verts[v] = vertexData{ty: t, phase: p}
	d.adj[v] = make(map[V]EdgeType)

	return v
}

// RemoveVertex deletes v, every edge incident to v, and any reference to v
// in the input and output lists.
//
// Implementation:
//   - Stage 1: Validate existence (ErrVertexNotFound).
//   - Stage 2: Drop the mirrored adjacency entries and decrement the edge count.
//   - Stage 3: Drop the vertex and filter it out of inputs/outputs.
//
// Complexity: O(deg(v) + |inputs| + |outputs|)
func (d *Diagram) RemoveVertex(v V) error {
	if _, ok := d.verts[v]; !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrVertexNotFound)
	}
	for u := range d.adj[v] {
		delete(d.adj[u], v)
		d.numEdges--
	}
	delete(d.adj, v)
	delete(d.verts, v)
	d.inputs = without(d.inputs, v)
	d.outputs = without(d.outputs, v)

	return nil
}

// HasVertex reports whether v exists.
func (d *Diagram) HasVertex(v V) bool {
	_, ok := d.verts[v]
	return ok
}

// VertexType returns the type of v. Missing vertices report Boundary and false.
func (d *Diagram) VertexType(v V) (VertexType, bool) {
	vd, ok := d.verts[v]
	return vd.ty, ok
}

// SetVertexType overwrites the type of v.
func (d *Diagram) SetVertexType(v V, t VertexType) error {
	vd, ok := d.verts[v]
	if !ok {
		return fmt.Errorf("SetVertexType(%d): %w", v, ErrVertexNotFound)
	}
	vd.ty = t
	d.verts[v] = vd

	return nil
}

// Phase returns the phase of v. Missing vertices report the zero phase and false.
func (d *Diagram) Phase(v V) (Phase, bool) {
	vd, ok := d.verts[v]
	return vd.phase, ok
}

// SetPhase overwrites the phase of v.
func (d *Diagram) SetPhase(v V, p Phase) error {
	vd, ok := d.verts[v]
	if !ok {
		return fmt.Errorf("SetPhase(%d): %w", v, ErrVertexNotFound)
	}
	vd.phase = p
	d.verts[v] = vd

	return nil
}

// AddToPhase adds p to the phase of v.
func (d *Diagram) AddToPhase(v V, p Phase) error {
	vd, ok := d.verts[v]
	if !ok {
		return fmt.Errorf("AddToPhase(%d): %w", v, ErrVertexNotFound)
	}
	vd.phase = vd.phase.Add(p)
	d.verts[v] = vd

	return nil
}

// Vertices returns all vertex indices in ascending order.
// Complexity: O(V log V)
func (d *Diagram) Vertices() []V {
	out := make([]V, 0, len(d.verts))
	for v := range d.verts {
		out = append(out, v)
	}
	sortVs(out)

	return out
}

// NumVertices returns |V|.
func (d *Diagram) NumVertices() int { return len(d.verts) }

// IsBoundary reports whether v exists and has type Boundary.
func (d *Diagram) IsBoundary(v V) bool {
	vd, ok := d.verts[v]
	return ok && vd.ty == Boundary
}

func sortVs(vs []V) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}

func without(vs []V, v V) []V {
	out := vs[:0]
	for _, u := range vs {
		if u != v {
			out = append(out, u)
		}
	}

	return out
}
