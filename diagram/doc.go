// Package diagram provides an in-memory ZX diagram with the primitives a
// local rewriting engine needs.
//
// A Diagram D = (V, E) carries:
//
//   - vertices indexed by V, each of type Boundary, Z or X, with a Phase;
//   - undirected edges of type Simple or Hadamard, at most one per vertex pair;
//   - an ordered input list and an ordered output list of boundary vertices.
//
// Phases are rational multiples of π kept modulo 2π, so equal angles compare
// equal with ==.
//
// Edge insertion comes in two flavours:
//
//	AddEdge(s, t, ty)       // strict: rejects self loops and existing edges
//	AddEdgeSmart(s, t, ty)  // resolves parallel edges with fusion/Hopf rules
//
// AddEdgeSmart is what rewriting uses: inserting a Hadamard edge next to an
// existing Hadamard edge between two Z spiders cancels both, which is how a
// replacement toggles the connectivity of a matched region.
//
// Value semantics:
//
// Diagrams are not synchronised. Code that wants to branch over several
// futures of one diagram clones it (Clone is O(V+E)) and mutates the copies.
//
// Core Methods:
//
//	AddVertex(t) V, AddVertexWithPhase(t, p) V, RemoveVertex(v) error
//	VertexType(v), SetVertexType(v, t), Phase(v), SetPhase(v, p), AddToPhase(v, p)
//	AddEdge, AddEdgeSmart, RemoveEdge, SetEdgeType, HasEdge, EdgeType
//	Vertices() []V, Edges() []Edge, Neighbors(v), Degree(v)
//	Inputs(), Outputs(), SetInputs(vs), SetOutputs(vs)
//	Clone(), Stats(), CheckNormalForm(), Equal(o)
//
// Errors:
//
//	ErrVertexNotFound, ErrEdgeNotFound, ErrSelfLoop, ErrEdgeExists,
//	ErrParallelBoundaryEdge, ErrBadEdgeType, ErrNotNormalForm
package diagram
