// File: matcher.go
// Role: Pattern registry and the backtracking embedding search.
// Determinism:
//   - Patterns are searched in ID order; candidates are tried in ascending index order.
//   - Identical (boundary, interior) embeddings found through pattern automorphisms
//     are reported once.
// Concurrency:
//   - Register before the first FindMatches; afterwards the Matcher is read-only
//     and FindMatches may run concurrently on different targets.

package matcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/zxrewrite/causal"
	"github.com/katalvlaran/zxrewrite/diagram"
)

// Matcher holds registered patterns.
type Matcher struct {
	patterns []*Pattern
}

// New returns an empty Matcher.
func New() *Matcher { return &Matcher{} }

// Register adds p and returns its ID.
func (m *Matcher) Register(p *Pattern) PatternID {
	m.patterns = append(m.patterns, p)
	return PatternID(len(m.patterns) - 1)
}

// Len returns the number of registered patterns.
func (m *Matcher) Len() int { return len(m.patterns) }

// Pattern returns the pattern registered under id, or nil.
func (m *Matcher) Pattern(id PatternID) *Pattern {
	if id < 0 || int(id) >= len(m.patterns) {
		return nil
	}

	return m.patterns[id]
}

// FindMatches returns every flow-compatible embedding of every registered
// pattern in d. An embedding maps each pattern spider to a distinct target
// spider such that:
//   - types and phases agree;
//   - edges between mapped spiders agree exactly, types included;
//   - non-boundary pattern spiders keep their degree, so nothing outside the
//     match touches the interior;
//   - if the pattern flow sends v to a spider w, the target flow sends m(v) to m(w);
//   - if the pattern flow sends v out through a wire, the target successor of
//     m(v) lies outside the match;
//   - if the pattern flow enters u through a wire, the target predecessor of
//     m(u) lies outside the match.
//
// flow must be a causal flow of d.
func (m *Matcher) FindMatches(d *diagram.Diagram, flow *causal.Flow) []Match {
	var spiders []diagram.V
	for _, v := range d.Vertices() {
		if !d.IsBoundary(v) {
			spiders = append(spiders, v)
		}
	}
	var out []Match
	for i, p := range m.patterns {
		s := &search{
			id:      PatternID(i),
			p:       p,
			d:       d,
			flow:    flow,
			spiders: spiders,
			img:     make(map[diagram.V]diagram.V, len(p.plan)),
			used:    make(map[diagram.V]diagram.V, len(p.plan)),
			seen:    make(map[string]bool),
		}
		s.extend(0)
		out = append(out, s.out...)
	}

	return out
}

// search is the state of one pattern's backtracking search.
type search struct {
	id      PatternID
	p       *Pattern
	d       *diagram.Diagram
	flow    *causal.Flow
	spiders []diagram.V

	img  map[diagram.V]diagram.V // pattern → target
	used map[diagram.V]diagram.V // target → pattern
	seen map[string]bool
	out  []Match
}

func (s *search) extend(i int) {
	if i == len(s.p.plan) {
		s.emit()
		return
	}
	step := s.p.plan[i]
	cands := s.spiders
	if !step.root {
		cands = s.d.MustNeighbors(s.img[step.anchor])
	}
	for _, c := range cands {
		if !s.admissible(step.v, c) {
			continue
		}
		s.img[step.v] = c
		s.used[c] = step.v
		s.extend(i + 1)
		delete(s.img, step.v)
		delete(s.used, c)
	}
}

// admissible checks the local conditions for placing pattern vertex v on c.
func (s *search) admissible(v, c diagram.V) bool {
	if _, taken := s.used[c]; taken || s.d.IsBoundary(c) {
		return false
	}
	pt, _ := s.p.d.VertexType(v)
	tt, _ := s.d.VertexType(c)
	if pt != tt {
		return false
	}
	pp, _ := s.p.d.Phase(v)
	tp, _ := s.d.Phase(c)
	if pp != tp {
		return false
	}
	if s.p.onBoundary[v] {
		if s.d.Degree(c) < spiderDegree(s.p.d, v) {
			return false
		}
	} else if s.d.Degree(c) != s.p.d.Degree(v) {
		return false
	}
	for q, tq := range s.img {
		pe, pok := s.p.d.EdgeType(v, q)
		te, tok := s.d.EdgeType(c, tq)
		if pok != tok || pe != te {
			return false
		}
	}

	return true
}

// flowCompatible checks the flow conditions on a complete embedding.
func (s *search) flowCompatible() bool {
	for pv, tv := range s.img {
		ps, ok := s.p.flow.Successor(pv)
		if !ok {
			continue
		}
		ts, tok := s.flow.Successor(tv)
		if s.p.d.IsBoundary(ps) {
			if _, inside := s.used[ts]; tok && inside {
				return false
			}
			continue
		}
		if !tok || ts != s.img[ps] {
			return false
		}
	}
	for _, w := range s.p.wires {
		pu, ok := s.p.flow.Successor(w)
		if !ok || s.p.d.IsBoundary(pu) {
			continue
		}
		if tp, ok := s.flow.Predecessor(s.img[pu]); ok {
			if _, inside := s.used[tp]; inside {
				return false
			}
		}
	}

	return true
}

func (s *search) emit() {
	if !s.flowCompatible() {
		return
	}
	boundary := make([]diagram.V, len(s.p.boundary))
	for i, v := range s.p.boundary {
		boundary[i] = s.img[v]
	}
	interior := treeset.NewWith(compareV)
	for pv, tv := range s.img {
		if !s.p.onBoundary[pv] {
			interior.Add(tv)
		}
	}
	inner := make([]diagram.V, 0, interior.Size())
	for _, v := range interior.Values() {
		inner = append(inner, v.(diagram.V))
	}

	key := matchKey(boundary, inner)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.out = append(s.out, Match{Pattern: s.id, Boundary: boundary, Interior: inner})
}

func matchKey(boundary, interior []diagram.V) string {
	var b strings.Builder
	for _, v := range boundary {
		fmt.Fprintf(&b, "%d,", v)
	}
	b.WriteByte('|')
	for _, v := range interior {
		fmt.Fprintf(&b, "%d,", v)
	}

	return b.String()
}

// spiderDegree counts the spider neighbours of v.
func spiderDegree(d *diagram.Diagram, v diagram.V) int {
	n := 0
	for _, u := range d.MustNeighbors(v) {
		if !d.IsBoundary(u) {
			n++
		}
	}

	return n
}

func compareV(a, b interface{}) int {
	x, y := a.(diagram.V), b.(diagram.V)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func sortVs(vs []diagram.V) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}
