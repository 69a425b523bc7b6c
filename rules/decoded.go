// File: decoded.go
// Role: DecodedDiagram = diagram + name table, and its string-embedded JSON form.

package rules

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/zxrewrite/diagram"
	"github.com/katalvlaran/zxrewrite/graphjson"
)

// DecodedDiagram is a diagram whose vertices can be referred to by the names
// used in its source document.
//
// In rule files it is serialised as a JSON string holding a graph document.
type DecodedDiagram struct {
	Diagram *diagram.Diagram
	Names   *NameTable
}

// DecodeDiagram decodes a graph document.
func DecodeDiagram(doc string) (*DecodedDiagram, error) {
	d, names, err := graphjson.Decode([]byte(doc))
	if err != nil {
		return nil, err
	}
	t, err := NameTableFrom(names)
	if err != nil {
		return nil, err
	}

	return &DecodedDiagram{Diagram: d, Names: t}, nil
}

// Encode renders the diagram as a graph document, keeping table names where
// the vertex still exists.
func (dd *DecodedDiagram) Encode() (string, error) {
	var nameOf graphjson.NameFunc
	if dd.Names != nil {
		nameOf = dd.Names.Name
	}
	data, err := graphjson.Encode(dd.Diagram, nameOf)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// VertexByName resolves a name to its vertex.
func (dd *DecodedDiagram) VertexByName(name string) (diagram.V, error) {
	if dd.Names != nil {
		if v, ok := dd.Names.Vertex(name); ok {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownName)
}

// NameOf resolves a vertex to its name.
func (dd *DecodedDiagram) NameOf(v diagram.V) (string, error) {
	if dd.Names != nil {
		if n, ok := dd.Names.Name(v); ok {
			return n, nil
		}
	}

	return "", fmt.Errorf("vertex %d: %w", v, ErrUnknownVertex)
}

// MarshalJSON writes the embedded document as a JSON string.
func (dd DecodedDiagram) MarshalJSON() ([]byte, error) {
	if dd.Diagram == nil {
		return nil, fmt.Errorf("marshal: nil diagram: %w", ErrMalformedRuleFile)
	}
	s, err := dd.Encode()
	if err != nil {
		return nil, err
	}

	return json.Marshal(s)
}

// UnmarshalJSON reads a JSON string and decodes the document it holds.
func (dd *DecodedDiagram) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("embedded document is not a string: %v: %w", err, ErrMalformedRuleFile)
	}
	dec, err := DecodeDiagram(s)
	if err != nil {
		return err
	}
	*dd = *dec

	return nil
}
