// Package matcher provides a registry of flow-annotated patterns and finds
// their flow-compatible embeddings in target diagrams.
package matcher

import (
	"errors"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// Sentinel errors for pattern construction.
var (
	// ErrNilFlow is returned when a pattern is built without a flow.
	ErrNilFlow = errors.New("matcher: nil flow")

	// ErrEmptyPattern is returned for a pattern without spiders.
	ErrEmptyPattern = errors.New("matcher: pattern has no spiders")

	// ErrBadBoundary is returned when a boundary entry is missing or a
	// boundary-type vertex.
	ErrBadBoundary = errors.New("matcher: bad pattern boundary")
)

// PatternID identifies a registered pattern. IDs are dense, starting at 0, in
// registration order.
type PatternID int

// Match is one embedding of a pattern in a target diagram.
type Match struct {
	// Pattern is the embedded pattern.
	Pattern PatternID
	// Boundary holds the images of the pattern boundary, in pattern boundary
	// order; a repeated pattern entry repeats its image.
	Boundary []diagram.V
	// Interior holds the images of the other pattern spiders, ascending.
	Interior []diagram.V
}

// planStep is one vertex of the search plan.
type planStep struct {
	v      diagram.V // pattern vertex to place
	anchor diagram.V // earlier step adjacent to v; candidates are neighbours of its image
	root   bool      // no earlier adjacent step: candidates are all target spiders
}
