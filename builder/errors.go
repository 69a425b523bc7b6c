// SPDX-License-Identifier: MIT
// Package: zxrewrite/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "J(q=3): qubit out of range".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewQubits indicates BuildDiagram was asked for fewer than MinQubits qubits.
var ErrTooFewQubits = errors.New("builder: too few qubits")

// ErrQubitRange indicates a constructor referenced a qubit outside [0, qubits).
var ErrQubitRange = errors.New("builder: qubit out of range")

// ErrSameQubit indicates CZ(q, q).
var ErrSameQubit = errors.New("builder: two-qubit gate on a single qubit")

// ErrBadDepth indicates RandomLayers(depth) with depth < MinDepth.
var ErrBadDepth = errors.New("builder: invalid depth")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a diagram operation that
// failed while building.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a sentinel with the constructor context.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
