package causal

import (
	"fmt"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// Compute finds a causal flow of d with respect to d.Inputs() and d.Outputs(),
// or reports ErrNoFlow.
//
// Algorithm (Mhalla–Perdrix, backwards from the outputs):
//
//	Out := O;  C := O \ I
//	repeat
//	    for v in C: if N(v) \ Out = {u}, set f(u) = v, add u to Out', v to C'
//	    stop when Out' is empty
//	    Out := Out ∪ Out';  C := (C \ C') ∪ (Out' \ I)
//	d has a flow iff Out = V at the end
//
// Boundary vertices take part like any other vertex. Candidates and
// neighbourhoods are scanned in ascending index order, so the result is
// deterministic.
//
// Complexity: O(V·Δ) per round, at most V rounds.
func Compute(d *diagram.Diagram) (*Flow, error) {
	inputs, outputs := d.Inputs(), d.Outputs()
	if len(inputs) > len(outputs) {
		return nil, fmt.Errorf("%d inputs, %d outputs: %w", len(inputs), len(outputs), ErrNoFlow)
	}

	// 1. Seed the solved set with the outputs.
	isInput := make(map[diagram.V]bool, len(inputs))
	for _, v := range inputs {
		isInput[v] = true
	}
	f := &Flow{
		succ:  make(map[diagram.V]diagram.V),
		pred:  make(map[diagram.V]diagram.V),
		depth: make(map[diagram.V]int, d.NumVertices()),
	}
	var frontier []diagram.V
	for _, v := range outputs {
		f.depth[v] = 0
		if !isInput[v] {
			frontier = append(frontier, v)
		}
	}
	sortVs(frontier)

	// 2. Peel one layer per round.
	for k := 1; ; k++ {
		var solved []diagram.V
		consumed := make(map[diagram.V]bool)
		for _, v := range frontier {
			u, ok := uniqueUnsolved(d, f.depth, v)
			if !ok {
				continue
			}
			if _, taken := f.succ[u]; taken {
				// claimed earlier this round by another frontier vertex
				continue
			}
			f.succ[u] = v
			f.pred[v] = u
			solved = append(solved, u)
			consumed[v] = true
		}
		if len(solved) == 0 {
			break
		}
		// 3. Commit the round after the whole frontier has been scanned.
		next := frontier[:0:0]
		for _, v := range frontier {
			if !consumed[v] {
				next = append(next, v)
			}
		}
		for _, u := range solved {
			f.depth[u] = k
			if !isInput[u] {
				next = append(next, u)
			}
		}
		sortVs(next)
		frontier = next
	}

	// 4. Every vertex must be solved.
	if missing := d.NumVertices() - len(f.depth); missing > 0 {
		return nil, fmt.Errorf("%d vertices unresolved: %w", missing, ErrNoFlow)
	}

	return f, nil
}

// uniqueUnsolved returns the only neighbour of v outside solved, if there is exactly one.
func uniqueUnsolved(d *diagram.Diagram, solved map[diagram.V]int, v diagram.V) (diagram.V, bool) {
	var found diagram.V
	n := 0
	for _, u := range d.MustNeighbors(v) {
		if _, ok := solved[u]; ok {
			continue
		}
		found = u
		if n++; n > 1 {
			return 0, false
		}
	}

	return found, n == 1
}
