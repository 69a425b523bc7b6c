// File: encode.go
// Role: diagram.Diagram → Document.
// Determinism:
//   - Generated names depend only on vertex indices and the supplied names.
//   - encoding/json writes map keys sorted, so equal diagrams encode to equal bytes.

package graphjson

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// NameFunc reports the preferred name of a vertex, if it has one.
type NameFunc func(v diagram.V) (string, bool)

// Encode writes d as a JSON graph document. Vertices for which nameOf reports
// a name keep it; the others get "b<idx>" (boundaries) or "v<idx>" (spiders),
// suffixed with primes until they collide with no supplied name.
// nameOf may be nil.
func Encode(d *diagram.Diagram, nameOf NameFunc) ([]byte, error) {
	doc, err := ToDocument(d, nameOf)
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

// ToDocument is Encode without the final marshalling.
//
// Implementation:
//   - Stage 1: Resolve a unique name for every vertex.
//   - Stage 2: Emit wire vertices with their input/output index.
//   - Stage 3: Emit node vertices with non-zero phases.
//   - Stage 4: Emit edges "e0", "e1", ... in Edges() order.
func ToDocument(d *diagram.Diagram, nameOf NameFunc) (*Document, error) {
	vs := d.Vertices()

	// Stage 1: names.
	names := make(map[diagram.V]string, len(vs))
	taken := make(map[string]bool, len(vs))
	if nameOf != nil {
		for _, v := range vs {
			if n, ok := nameOf(v); ok {
				if taken[n] {
					return nil, fmt.Errorf("name %q used twice: %w", n, ErrMalformedDocument)
				}
				names[v] = n
				taken[n] = true
			}
		}
	}
	for _, v := range vs {
		if _, ok := names[v]; ok {
			continue
		}
		prefix := "v"
		if d.IsBoundary(v) {
			prefix = "b"
		}
		n := fmt.Sprintf("%s%d", prefix, v)
		for taken[n] {
			n += "'"
		}
		names[v] = n
		taken[n] = true
	}

	doc := &Document{
		WireVertices: make(map[string]WireVertex),
		NodeVertices: make(map[string]NodeVertex),
		UndirEdges:   make(map[string]EdgeEntry),
	}

	// Stage 2: wires.
	for _, v := range append(d.Inputs(), d.Outputs()...) {
		if !d.IsBoundary(v) {
			return nil, fmt.Errorf("boundary list holds non-boundary vertex %d: %w", v, ErrMalformedDocument)
		}
	}
	for i, v := range d.Inputs() {
		i := i
		ann := wireFor(doc, names[v])
		ann.Input = &i
		doc.WireVertices[names[v]] = WireVertex{Annotation: ann}
	}
	for i, v := range d.Outputs() {
		i := i
		ann := wireFor(doc, names[v])
		ann.Output = &i
		doc.WireVertices[names[v]] = WireVertex{Annotation: ann}
	}

	// Stage 3: nodes, and boundaries outside both lists.
	for _, v := range vs {
		ty, _ := d.VertexType(v)
		switch ty {
		case diagram.Boundary:
			if _, ok := doc.WireVertices[names[v]]; !ok {
				doc.WireVertices[names[v]] = WireVertex{Annotation: Annotation{Boundary: true}}
			}
		case diagram.Z, diagram.X:
			nd := NodeData{Type: typeZ}
			if ty == diagram.X {
				nd.Type = typeX
			}
			if p, _ := d.Phase(v); !p.IsZero() {
				nd.Value = FormatPhase(p)
			}
			doc.NodeVertices[names[v]] = NodeVertex{Data: nd}
		default:
			return nil, fmt.Errorf("vertex %d: %s: %w", v, ty, ErrBadVertexType)
		}
	}

	// Stage 4: edges.
	for i, e := range d.Edges() {
		entry := EdgeEntry{Src: names[e.Source], Tgt: names[e.Target]}
		if e.Type == diagram.Hadamard {
			entry.Type = edgeHadamard
		}
		doc.UndirEdges[fmt.Sprintf("e%d", i)] = entry
	}

	return doc, nil
}

func wireFor(doc *Document, name string) Annotation {
	if w, ok := doc.WireVertices[name]; ok {
		return w.Annotation
	}

	return Annotation{Boundary: true}
}
