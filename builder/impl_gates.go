// SPDX-License-Identifier: MIT
// Package: zxrewrite/builder
//
// impl_gates.go - J, CZ and Phase constructors.
//
// Contract:
//   - Qubit indices are validated before any mutation (ErrQubitRange).
//   - J appends exactly one spider; CZ and Phase append none.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// J appends the measurement-pattern gate J(α) = H·Z(α) to qubit q: a new
// spider of phase alpha, joined to the frontier by a Hadamard edge.
// Complexity: O(1).
func J(q int, alpha diagram.Phase) Constructor {
	return func(c *circuit, _ builderConfig) error {
		if err := validateQubit(MethodJ, c, q); err != nil {
			return err
		}
		v := c.d.AddVertexWithPhase(diagram.Z, alpha)
		if err := c.d.AddEdge(c.frontier[q], v, diagram.Hadamard); err != nil {
			return fmt.Errorf("%s(q=%d): %v: %w", MethodJ, q, err, ErrConstructFailed)
		}
		c.frontier[q] = v

		return nil
	}
}

// CZ toggles a Hadamard edge between the frontiers of a and b.
// Complexity: O(1).
func CZ(a, b int) Constructor {
	return func(c *circuit, _ builderConfig) error {
		if err := validateQubit(MethodCZ, c, a); err != nil {
			return err
		}
		if err := validateQubit(MethodCZ, c, b); err != nil {
			return err
		}
		if a == b {
			return builderErrorf(MethodCZ, ErrSameQubit, "%d, %d", a, b)
		}
		if err := c.d.AddEdgeSmart(c.frontier[a], c.frontier[b], diagram.Hadamard); err != nil {
			return fmt.Errorf("%s(%d, %d): %v: %w", MethodCZ, a, b, err, ErrConstructFailed)
		}

		return nil
	}
}

// Phase adds alpha to the frontier spider of q.
// Complexity: O(1).
func Phase(q int, alpha diagram.Phase) Constructor {
	return func(c *circuit, _ builderConfig) error {
		if err := validateQubit(MethodPhase, c, q); err != nil {
			return err
		}
		if err := c.d.AddToPhase(c.frontier[q], alpha); err != nil {
			return fmt.Errorf("%s(q=%d): %v: %w", MethodPhase, q, err, ErrConstructFailed)
		}

		return nil
	}
}
