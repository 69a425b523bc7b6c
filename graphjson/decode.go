// File: decode.go
// Role: Document → diagram.Diagram.
// Determinism:
//   - Wire vertices are created first, then node vertices, each in lexicographic name order.
//   - Edges are inserted in lexicographic edge-name order.

package graphjson

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// Decode parses a JSON graph document into a diagram and the name of every
// vertex it created.
//
// Implementation:
//   - Stage 1: Unmarshal the document (ErrMalformedDocument).
//   - Stage 2: Create boundary vertices; order inputs and outputs by annotation index.
//   - Stage 3: Create spiders; set aside hadamard boxes flagged is_edge.
//   - Stage 4: Insert edges with AddEdgeSmart; collect the two legs of each box.
//   - Stage 5: Collapse every box into one edge between its legs.
//
// Complexity: O((V+E) log(V+E))
func Decode(data []byte) (*diagram.Diagram, map[string]diagram.V, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, ErrMalformedDocument)
	}

	return FromDocument(&doc)
}

type boxLeg struct {
	v  diagram.V
	ty diagram.EdgeType
}

// FromDocument builds a diagram from an already unmarshalled document.
func FromDocument(doc *Document) (*diagram.Diagram, map[string]diagram.V, error) {
	d := diagram.New()
	names := make(map[string]diagram.V, len(doc.WireVertices)+len(doc.NodeVertices))

	// Stage 2: boundaries.
	inputs := make(map[int]diagram.V)
	outputs := make(map[int]diagram.V)
	for _, name := range sortedKeys(doc.WireVertices) {
		ann := doc.WireVertices[name].Annotation
		v := d.AddVertex(diagram.Boundary)
		names[name] = v
		if ann.Input != nil {
			if _, dup := inputs[*ann.Input]; dup {
				return nil, nil, fmt.Errorf("input %d used twice: %w", *ann.Input, ErrMalformedDocument)
			}
			inputs[*ann.Input] = v
		}
		if ann.Output != nil {
			if _, dup := outputs[*ann.Output]; dup {
				return nil, nil, fmt.Errorf("output %d used twice: %w", *ann.Output, ErrMalformedDocument)
			}
			outputs[*ann.Output] = v
		}
	}
	d.SetInputs(orderedByIndex(inputs))
	d.SetOutputs(orderedByIndex(outputs))

	// Stage 3: spiders and boxes.
	boxes := make(map[string][]boxLeg)
	for _, name := range sortedKeys(doc.NodeVertices) {
		if _, clash := names[name]; clash {
			return nil, nil, fmt.Errorf("vertex %q declared twice: %w", name, ErrMalformedDocument)
		}
		nd := doc.NodeVertices[name].Data
		var ty diagram.VertexType
		switch nd.Type {
		case typeZ, "":
			ty = diagram.Z
		case typeX:
			ty = diagram.X
		case typeHadamard:
			if nd.IsEdge != "true" {
				return nil, nil, fmt.Errorf("vertex %q: hadamard box not on an edge: %w", name, ErrBadVertexType)
			}
			boxes[name] = nil
			continue
		default:
			return nil, nil, fmt.Errorf("vertex %q: type %q: %w", name, nd.Type, ErrBadVertexType)
		}
		p, err := ParsePhase(nd.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("vertex %q: %w", name, err)
		}
		names[name] = d.AddVertexWithPhase(ty, p)
	}

	// Stage 4: edges.
	for _, ename := range sortedKeys(doc.UndirEdges) {
		e := doc.UndirEdges[ename]
		ety, err := edgeTypeOf(e.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("edge %q: %w", ename, err)
		}
		_, srcBox := boxes[e.Src]
		_, tgtBox := boxes[e.Tgt]
		switch {
		case srcBox && tgtBox:
			return nil, nil, fmt.Errorf("edge %q joins two hadamard boxes: %w", ename, ErrMalformedDocument)
		case srcBox || tgtBox:
			box, other := e.Src, e.Tgt
			if tgtBox {
				box, other = e.Tgt, e.Src
			}
			v, ok := names[other]
			if !ok {
				return nil, nil, fmt.Errorf("edge %q: %q: %w", ename, other, ErrUnknownVertexName)
			}
			boxes[box] = append(boxes[box], boxLeg{v: v, ty: ety})
		default:
			s, ok := names[e.Src]
			if !ok {
				return nil, nil, fmt.Errorf("edge %q: %q: %w", ename, e.Src, ErrUnknownVertexName)
			}
			t, ok := names[e.Tgt]
			if !ok {
				return nil, nil, fmt.Errorf("edge %q: %q: %w", ename, e.Tgt, ErrUnknownVertexName)
			}
			if err = d.AddEdgeSmart(s, t, ety); err != nil {
				return nil, nil, fmt.Errorf("edge %q: %v: %w", ename, err, ErrMalformedDocument)
			}
		}
	}

	// Stage 5: a box is a Hadamard edge; each Hadamard-typed leg cancels one H.
	for _, bname := range sortedKeys(boxes) {
		legs := boxes[bname]
		if len(legs) != 2 {
			return nil, nil, fmt.Errorf("hadamard box %q has %d legs: %w", bname, len(legs), ErrMalformedDocument)
		}
		ty := diagram.Hadamard
		for _, l := range legs {
			if l.ty == diagram.Hadamard {
				ty = flip(ty)
			}
		}
		if err := d.AddEdgeSmart(legs[0].v, legs[1].v, ty); err != nil {
			return nil, nil, fmt.Errorf("hadamard box %q: %v: %w", bname, err, ErrMalformedDocument)
		}
	}

	return d, names, nil
}

func edgeTypeOf(s string) (diagram.EdgeType, error) {
	switch s {
	case "", edgeSimple:
		return diagram.Simple, nil
	case edgeHadamard:
		return diagram.Hadamard, nil
	default:
		return 0, fmt.Errorf("edge type %q: %w", s, ErrMalformedDocument)
	}
}

func flip(ty diagram.EdgeType) diagram.EdgeType {
	if ty == diagram.Hadamard {
		return diagram.Simple
	}

	return diagram.Hadamard
}

func orderedByIndex(m map[int]diagram.V) []diagram.V {
	idx := make([]int, 0, len(m))
	for i := range m {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	out := make([]diagram.V, 0, len(idx))
	for _, i := range idx {
		out = append(out, m[i])
	}

	return out
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
