// Package rules holds the serialisable rule data model: rule sets, their
// left- and right-hand sides, boundary orientations and decoded diagrams.
//
// This file declares the data types and the sentinel errors.
package rules

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for rule data.
var (
	// ErrMalformedRuleFile indicates a rule file or record that does not decode.
	ErrMalformedRuleFile = errors.New("rules: malformed rule file")

	// ErrDuplicateName indicates a name bound twice in a NameTable.
	ErrDuplicateName = errors.New("rules: duplicate vertex name")

	// ErrDuplicateVertex indicates a vertex bound twice in a NameTable.
	ErrDuplicateVertex = errors.New("rules: duplicate vertex")

	// ErrUnknownName indicates a lookup of a name that is not in the table.
	ErrUnknownName = errors.New("rules: unknown vertex name")

	// ErrUnknownVertex indicates a lookup of a vertex that has no name.
	ErrUnknownVertex = errors.New("rules: unknown vertex")

	// ErrBoundaryArity indicates a boundary vertex without exactly one neighbour.
	ErrBoundaryArity = errors.New("rules: boundary vertex must have exactly one neighbour")

	// ErrArityMismatch indicates an RHS whose boundary length differs from the LHS.
	ErrArityMismatch = errors.New("rules: boundary arity mismatch")

	// ErrIllegalEdge indicates a non-Hadamard edge between two RHS spiders.
	ErrIllegalEdge = errors.New("rules: non-hadamard interior edge")

	// ErrBadUnfused indicates an unfused index that is not an RHS spider.
	ErrBadUnfused = errors.New("rules: bad unfused index")

	// ErrNoOrientation indicates a side without any boundary orientation.
	ErrNoOrientation = errors.New("rules: no boundary orientation")

	// ErrMissingDiagram indicates a rule side without a diagram.
	ErrMissingDiagram = errors.New("rules: rule side has no diagram")

	// ErrBadOrientation indicates an orientation naming a vertex that is not a boundary.
	ErrBadOrientation = errors.New("rules: orientation names a non-boundary vertex")
)

// RewriteIos is one boundary orientation: ordered input names and ordered
// output names. Its JSON form is [[inputs...], [outputs...]].
type RewriteIos struct {
	Inputs  []string
	Outputs []string
}

// MarshalJSON writes the orientation as a pair of string arrays.
func (io RewriteIos) MarshalJSON() ([]byte, error) {
	in, out := io.Inputs, io.Outputs
	if in == nil {
		in = []string{}
	}
	if out == nil {
		out = []string{}
	}

	return json.Marshal([2][]string{in, out})
}

// UnmarshalJSON reads a pair of string arrays.
func (io *RewriteIos) UnmarshalJSON(data []byte) error {
	var pair [][]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("orientation: %v: %w", err, ErrMalformedRuleFile)
	}
	if len(pair) != 2 {
		return fmt.Errorf("orientation has %d lists, want 2: %w", len(pair), ErrMalformedRuleFile)
	}
	io.Inputs, io.Outputs = pair[0], pair[1]

	return nil
}

// RewriteRhs is one replacement alternative of a rule set.
//
// JSON keys: reduction, g, ios, unfused, unfused1, unfused2. A nil unfused
// list is omitted; a non-nil empty list is written as [].
type RewriteRhs struct {
	// Reduction is the author's estimate of the two-qubit gate reduction over the LHS.
	// It is advisory; rewrite.Result reports the measured change.
	Reduction int
	// G is the replacement diagram.
	G DecodedDiagram
	// Ios lists the admissible orientations of G's boundary.
	Ios []RewriteIos
	// Unfused lists the vertex indices of G left unfused by a local complementation.
	Unfused []int
	// Unfused1 lists the vertex indices of G left unfused around the first pivot vertex.
	Unfused1 []int
	// Unfused2 lists the vertex indices of G left unfused around the second pivot vertex.
	Unfused2 []int
}

// rhsRecord is the wire form of RewriteRhs. Pointers tell an absent list
// from an empty one.
type rhsRecord struct {
	Reduction int             `json:"reduction"`
	G         json.RawMessage `json:"g"`
	Ios       []RewriteIos    `json:"ios"`
	Unfused   *[]int          `json:"unfused,omitempty"`
	Unfused1  *[]int          `json:"unfused1,omitempty"`
	Unfused2  *[]int          `json:"unfused2,omitempty"`
}

// MarshalJSON writes the RHS record.
func (r RewriteRhs) MarshalJSON() ([]byte, error) {
	g, err := r.G.MarshalJSON()
	if err != nil {
		return nil, err
	}
	ios := r.Ios
	if ios == nil {
		ios = []RewriteIos{}
	}

	return json.Marshal(rhsRecord{
		Reduction: r.Reduction,
		G:         g,
		Ios:       ios,
		Unfused:   optional(r.Unfused),
		Unfused1:  optional(r.Unfused1),
		Unfused2:  optional(r.Unfused2),
	})
}

// UnmarshalJSON reads an RHS record. The g key is required.
func (r *RewriteRhs) UnmarshalJSON(data []byte) error {
	var rec rhsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%v: %w", err, ErrMalformedRuleFile)
	}
	if isNull(rec.G) {
		return fmt.Errorf("missing g: %w", ErrMalformedRuleFile)
	}
	out := RewriteRhs{Reduction: rec.Reduction, Ios: rec.Ios}
	if err := json.Unmarshal(rec.G, &out.G); err != nil {
		return wrapPart(err, "g")
	}
	if rec.Unfused != nil {
		out.Unfused = *rec.Unfused
	}
	if rec.Unfused1 != nil {
		out.Unfused1 = *rec.Unfused1
	}
	if rec.Unfused2 != nil {
		out.Unfused2 = *rec.Unfused2
	}
	*r = out

	return nil
}

func optional(list []int) *[]int {
	if list == nil {
		return nil
	}

	return &list
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// RewriteRuleSet is one LHS with its orientations and its RHS alternatives.
type RewriteRuleSet struct {
	Lhs    DecodedDiagram `json:"lhs"`
	LhsIos []RewriteIos   `json:"lhs_ios"`
	Rhss   []RewriteRhs   `json:"rhss"`
}

// UnmarshalJSON decodes a rule set, naming the failing part (lhs, lhs_ios,
// rhs index) in the error.
func (rs *RewriteRuleSet) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lhs    json.RawMessage   `json:"lhs"`
		LhsIos json.RawMessage   `json:"lhs_ios"`
		Rhss   []json.RawMessage `json:"rhss"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%v: %w", err, ErrMalformedRuleFile)
	}
	if isNull(raw.Lhs) {
		return fmt.Errorf("missing lhs: %w", ErrMalformedRuleFile)
	}
	var out RewriteRuleSet
	if err := json.Unmarshal(raw.Lhs, &out.Lhs); err != nil {
		return wrapPart(err, "lhs")
	}
	if raw.LhsIos != nil {
		if err := json.Unmarshal(raw.LhsIos, &out.LhsIos); err != nil {
			return wrapPart(err, "lhs_ios")
		}
	}
	out.Rhss = make([]RewriteRhs, len(raw.Rhss))
	for i, r := range raw.Rhss {
		if err := json.Unmarshal(r, &out.Rhss[i]); err != nil {
			return wrapPart(err, fmt.Sprintf("rhs %d", i))
		}
	}
	*rs = out

	return nil
}

// LHS returns the left-hand side viewed as a RuleSide.
func (rs *RewriteRuleSet) LHS() RewriteLhs {
	return RewriteLhs{G: &rs.Lhs, Ios: rs.LhsIos}
}

// RewriteLhs is a read-only view of a rule set's left-hand side.
type RewriteLhs struct {
	G   *DecodedDiagram
	Ios []RewriteIos
}
