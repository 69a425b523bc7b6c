// File: names.go
// Role: Bijective name ↔ vertex table of a decoded diagram.
// Determinism:
//   - Names() returns names sorted ascending.
// Concurrency:
//   - Not synchronised; tables are filled once at decode time and read afterwards.

package rules

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/hashbidimap"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// NameTable is a bijection between vertex names and vertex indices.
// Both directions are O(1): the table keeps a forward and an inverse map.
type NameTable struct {
	m *hashbidimap.Map // name (string) ↔ vertex (diagram.V)
}

// NewNameTable returns an empty table.
func NewNameTable() *NameTable {
	return &NameTable{m: hashbidimap.New()}
}

// NameTableFrom builds a table from a name → vertex map, as returned by
// graphjson.Decode.
func NameTableFrom(names map[string]diagram.V) (*NameTable, error) {
	t := NewNameTable()
	keys := make([]string, 0, len(names))
	for n := range names {
		keys = append(keys, n)
	}
	sort.Strings(keys)
	for _, n := range keys {
		if err := t.Put(n, names[n]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Put binds name to v. Neither may already be bound.
func (t *NameTable) Put(name string, v diagram.V) error {
	if _, ok := t.m.Get(name); ok {
		return fmt.Errorf("name %q: %w", name, ErrDuplicateName)
	}
	if _, ok := t.m.GetKey(v); ok {
		return fmt.Errorf("vertex %d: %w", v, ErrDuplicateVertex)
	}
	t.m.Put(name, v)

	return nil
}

// Vertex returns the vertex bound to name.
func (t *NameTable) Vertex(name string) (diagram.V, bool) {
	v, ok := t.m.Get(name)
	if !ok {
		return 0, false
	}

	return v.(diagram.V), true
}

// Name returns the name bound to v.
func (t *NameTable) Name(v diagram.V) (string, bool) {
	n, ok := t.m.GetKey(v)
	if !ok {
		return "", false
	}

	return n.(string), true
}

// Len returns the number of bindings.
func (t *NameTable) Len() int { return t.m.Size() }

// Names returns every bound name in ascending order.
func (t *NameTable) Names() []string {
	keys := t.m.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.(string))
	}
	sort.Strings(out)

	return out
}
