// File: methods_adjacent.go
// Role: Neighbourhood queries.
// Determinism:
//   - Neighbors() returns indices sorted ascending.
// Concurrency:
//   - None; a Diagram is owned by a single goroutine.

package diagram

import "fmt"

// Neighbors returns the vertices adjacent to v in ascending order.
//
// Errors:
//   - ErrVertexNotFound: v does not exist.
//
// Complexity: O(d log d)
func (d *Diagram) Neighbors(v V) ([]V, error) {
	nbrs, ok := d.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]V, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	sortVs(out)

	return out, nil
}

// MustNeighbors is Neighbors for vertices known to exist; a missing vertex
// yields an empty slice.
func (d *Diagram) MustNeighbors(v V) []V {
	out, _ := d.Neighbors(v)
	return out
}

// Degree returns the number of edges at v, or 0 if v does not exist.
// Complexity: O(1)
func (d *Diagram) Degree(v V) int { return len(d.adj[v]) }

// ForEachNeighbor calls fn for every neighbour of v in unspecified order.
// Use Neighbors when the order matters.
func (d *Diagram) ForEachNeighbor(v V, fn func(u V, ty EdgeType)) {
	for u, ty := range d.adj[v] {
		fn(u, ty)
	}
}
