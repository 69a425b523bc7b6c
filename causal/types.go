// Package causal computes and checks causal flow certificates of diagrams.
package causal

import (
	"errors"
	"sort"

	"github.com/katalvlaran/zxrewrite/diagram"
)

var (
	// ErrNoFlow indicates a diagram whose input/output labelling admits no causal flow.
	ErrNoFlow = errors.New("causal: diagram has no causal flow")

	// ErrInvalidFlow indicates a Flow that is not a causal flow of the given diagram.
	ErrInvalidFlow = errors.New("causal: invalid flow")
)

// visitState is the DFS colour used by Order.
type visitState int

const (
	white visitState = iota // not visited
	gray                    // on the current DFS path
	black                   // fully explored
)

// Flow is a causal flow: a successor function f on the non-output vertices,
// with f(v) adjacent to v, together with the layer depth of each vertex
// (outputs at depth 0).
//
// A Flow is immutable once built and safe for concurrent reads.
type Flow struct {
	succ  map[diagram.V]diagram.V
	pred  map[diagram.V]diagram.V
	depth map[diagram.V]int
}

// New builds a Flow from an explicit successor map. Depths are left empty;
// use it for certificates obtained elsewhere and check them with Verify.
func New(succ map[diagram.V]diagram.V) *Flow {
	f := &Flow{
		succ:  make(map[diagram.V]diagram.V, len(succ)),
		pred:  make(map[diagram.V]diagram.V, len(succ)),
		depth: make(map[diagram.V]int),
	}
	for u, v := range succ {
		f.succ[u] = v
		f.pred[v] = u
	}

	return f
}

// Successor returns f(v).
func (f *Flow) Successor(v diagram.V) (diagram.V, bool) {
	u, ok := f.succ[v]
	return u, ok
}

// Predecessor returns f⁻¹(v).
func (f *Flow) Predecessor(v diagram.V) (diagram.V, bool) {
	u, ok := f.pred[v]
	return u, ok
}

// Depth returns the layer of v: 0 for outputs, k for vertices resolved in round k.
func (f *Flow) Depth(v diagram.V) (int, bool) {
	k, ok := f.depth[v]
	return k, ok
}

// Len returns the number of (v, f(v)) pairs.
func (f *Flow) Len() int { return len(f.succ) }

// Layers groups vertices by depth; Layers()[0] holds the outputs.
// Each layer is sorted ascending.
func (f *Flow) Layers() [][]diagram.V {
	maxK := -1
	for _, k := range f.depth {
		if k > maxK {
			maxK = k
		}
	}
	out := make([][]diagram.V, maxK+1)
	for v, k := range f.depth {
		out[k] = append(out[k], v)
	}
	for _, l := range out {
		sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	}

	return out
}
