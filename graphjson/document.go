// Package graphjson reads and writes the pyzx/quizx JSON graph document.
//
// This file declares the document types and the sentinel errors.
//
// Errors:
//
//	ErrMalformedDocument  - the text is not a valid graph document.
//	ErrUnknownVertexName  - an edge refers to a name that is not a vertex.
//	ErrBadPhase           - a phase literal does not parse.
//	ErrBadVertexType      - a node vertex type other than Z, X or an edge-like hadamard box.
package graphjson

import (
	"encoding/json"
	"errors"
)

// Sentinel errors for graph documents.
var (
	// ErrMalformedDocument indicates invalid JSON or an inconsistent document.
	ErrMalformedDocument = errors.New("graphjson: malformed document")

	// ErrUnknownVertexName indicates an edge endpoint that names no vertex.
	ErrUnknownVertexName = errors.New("graphjson: unknown vertex name")

	// ErrBadPhase indicates a phase literal outside the accepted grammar.
	ErrBadPhase = errors.New("graphjson: bad phase")

	// ErrBadVertexType indicates an unsupported node vertex type.
	ErrBadVertexType = errors.New("graphjson: bad vertex type")
)

// Document is the JSON graph document.
type Document struct {
	WireVertices map[string]WireVertex `json:"wire_vertices"`
	NodeVertices map[string]NodeVertex `json:"node_vertices"`
	UndirEdges   map[string]EdgeEntry  `json:"undir_edges"`
	Scalar       json.RawMessage       `json:"scalar,omitempty"`
}

// WireVertex is a boundary vertex.
type WireVertex struct {
	Annotation Annotation `json:"annotation"`
}

// Annotation carries the boundary role of a wire vertex and optional layout.
type Annotation struct {
	Boundary bool      `json:"boundary"`
	Input    *int      `json:"input,omitempty"`
	Output   *int      `json:"output,omitempty"`
	Coord    []float64 `json:"coord,omitempty"`
}

// NodeVertex is a spider or an edge-like hadamard box.
type NodeVertex struct {
	Annotation *Annotation `json:"annotation,omitempty"`
	Data       NodeData    `json:"data"`
}

// NodeData is the payload of a node vertex.
type NodeData struct {
	Type   string `json:"type"`
	Value  string `json:"value,omitempty"`
	IsEdge string `json:"is_edge,omitempty"`
}

// EdgeEntry is one undirected edge.
type EdgeEntry struct {
	Src  string `json:"src"`
	Tgt  string `json:"tgt"`
	Type string `json:"type,omitempty"`
}

const (
	typeZ        = "Z"
	typeX        = "X"
	typeHadamard = "hadamard"
	edgeHadamard = "hadamard"
	edgeSimple   = "simple"
)
