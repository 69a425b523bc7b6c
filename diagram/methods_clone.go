// File: methods_clone.go
// Role: Deep copies of diagrams.
// Determinism:
//   - Clone carries nextV so vertices added to the clone never collide with
//     indices already handed out by the source.
// Concurrency:
//   - Reads the source only; the clone shares no storage with it.

package diagram

// Clone returns a deep copy of d: vertices, phases, edges, boundary lists and
// the index counter.
//
// Complexity: O(V+E)
func (d *Diagram) Clone() *Diagram {
	c := &Diagram{
		nextV:    d.nextV,
		verts:    make(map[V]vertexData, len(d.verts)),
		adj:      make(map[V]map[V]EdgeType, len(d.adj)),
		numEdges: d.numEdges,
		inputs:   append([]V(nil), d.inputs...),
		outputs:  append([]V(nil), d.outputs...),
	}
	for v, vd := range d.verts {
		c.verts[v] = vd
	}
	for v, nbrs := range d.adj {
		cp := make(map[V]EdgeType, len(nbrs))
		for u, ty := range nbrs {
			cp[u] = ty
		}
		c.adj[v] = cp
	}

	return c
}
