// Package diagram defines the ZX Diagram type together with its vertex, edge
// and phase primitives.
//
// This file declares V, VertexType, EdgeType, Edge, Diagram, the sentinel
// errors, and the New constructor.
//
// Errors:
//
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrSelfLoop             - strict insertion of a v-v edge.
//	ErrEdgeExists           - strict insertion of an edge that is already present.
//	ErrParallelBoundaryEdge - smart insertion of a parallel edge at a boundary vertex.
//	ErrBadEdgeType          - edge type outside {Simple, Hadamard}.
//	ErrNotNormalForm        - CheckNormalForm found a violating vertex or edge.
package diagram

import (
	"errors"
	"fmt"
)

// Sentinel errors for diagram operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("diagram: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("diagram: edge not found")

	// ErrSelfLoop indicates AddEdge was asked for an edge from a vertex to itself.
	ErrSelfLoop = errors.New("diagram: self-loop not allowed")

	// ErrEdgeExists indicates AddEdge was asked for an edge that is already present.
	ErrEdgeExists = errors.New("diagram: edge already exists")

	// ErrParallelBoundaryEdge indicates smart insertion of a second edge at a boundary vertex.
	ErrParallelBoundaryEdge = errors.New("diagram: parallel edge at boundary vertex")

	// ErrBadEdgeType indicates an edge type other than Simple or Hadamard.
	ErrBadEdgeType = errors.New("diagram: unknown edge type")

	// ErrNotNormalForm indicates a diagram that violates the graph-like normal form.
	ErrNotNormalForm = errors.New("diagram: not in normal form")
)

// V is a vertex index. Indices are dense, scoped to one Diagram, and never reused
// after RemoveVertex within that Diagram (clones continue the same sequence).
type V int

// VertexType is the kind of a vertex.
type VertexType uint8

const (
	// Boundary marks an input or output wire terminus.
	Boundary VertexType = iota
	// Z is a green spider.
	Z
	// X is a red spider.
	X
)

// String returns the pyzx spelling of the type.
func (t VertexType) String() string {
	switch t {
	case Boundary:
		return "B"
	case Z:
		return "Z"
	case X:
		return "X"
	default:
		return fmt.Sprintf("VertexType(%d)", uint8(t))
	}
}

// EdgeType is the kind of an edge.
type EdgeType uint8

const (
	// Simple is a plain wire.
	Simple EdgeType = iota + 1
	// Hadamard is a wire carrying a Hadamard box.
	Hadamard
)

// String returns "simple" or "hadamard".
func (t EdgeType) String() string {
	switch t {
	case Simple:
		return "simple"
	case Hadamard:
		return "hadamard"
	default:
		return fmt.Sprintf("EdgeType(%d)", uint8(t))
	}
}

// Valid reports whether t is Simple or Hadamard.
func (t EdgeType) Valid() bool { return t == Simple || t == Hadamard }

// Edge is an undirected edge. Source < Target always holds for edges
// returned by Diagram.Edges.
type Edge struct {
	Source V
	Target V
	Type   EdgeType
}

type vertexData struct {
	ty    VertexType
	phase Phase
}

// Diagram is a mutable ZX diagram: vertices with a type and a phase, undirected
// edges with a type, and ordered input and output lists.
//
// A Diagram is not synchronised. It is meant to be owned by one goroutine and
// copied with Clone before it is handed to another.
type Diagram struct {
	// Storage
	nextV    V                    // next index handed out by AddVertex
	verts    map[V]vertexData     // vertex → type and phase
	adj      map[V]map[V]EdgeType // adj[s][t] == adj[t][s]
	numEdges int                  // |E|, kept in step with adj

	// Boundary ordering
	inputs  []V
	outputs []V
}

// New creates an empty Diagram.
// Complexity: O(1)
func New() *Diagram {
	return &Diagram{
		verts: make(map[V]vertexData),
		adj:   make(map[V]map[V]EdgeType),
	}
}
