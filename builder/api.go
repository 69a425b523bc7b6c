// SPDX-License-Identifier: MIT
// Package: zxrewrite/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildDiagram(qubits, bopts, cons...). Creates the
//     input wires and first spiders, resolves cfg, runs cons in order,
//     attaches the outputs.
//   - Constructors are declared in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical diagrams.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zxrewrite/diagram"
)

// circuit is the diagram under construction plus each qubit's frontier spider.
type circuit struct {
	d        *diagram.Diagram
	frontier []diagram.V
}

func (c *circuit) qubits() int { return len(c.frontier) }

// Constructor applies a deterministic circuit step using the resolved
// builderConfig. Constructors validate their parameters before touching the
// diagram and return sentinel errors.
type Constructor func(c *circuit, cfg builderConfig) error

// BuildDiagram creates a diagram with qubits input wires, applies cons in
// order and closes every qubit with an output wire.
//
// Vertex layout: inputs 0..q-1, first spiders q..2q-1, then the vertices
// created by cons in call order, then outputs.
//
// Errors:
//   - ErrTooFewQubits: qubits < MinQubits.
//   - ErrConstructFailed: a nil constructor.
//   - constructor sentinels, wrapped as "BuildDiagram: %w".
func BuildDiagram(qubits int, bopts []BuilderOption, cons ...Constructor) (*diagram.Diagram, error) {
	if err := validateMin(MethodBuildDiagram, ErrTooFewQubits, qubits, MinQubits); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)

	// 1. Input wires, then one spider per qubit.
	d := diagram.New()
	inputs := make([]diagram.V, qubits)
	for q := range inputs {
		inputs[q] = d.AddVertex(diagram.Boundary)
	}
	c := &circuit{d: d, frontier: make([]diagram.V, qubits)}
	for q, in := range inputs {
		c.frontier[q] = d.AddVertex(diagram.Z)
		if err := d.AddEdge(in, c.frontier[q], diagram.Simple); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", MethodBuildDiagram, err, ErrConstructFailed)
		}
	}

	// 2. Constructors in order.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildDiagram, i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildDiagram, err)
		}
	}

	// 3. Output wires.
	outputs := make([]diagram.V, qubits)
	for q, f := range c.frontier {
		outputs[q] = d.AddVertex(diagram.Boundary)
		if err := d.AddEdge(f, outputs[q], diagram.Simple); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", MethodBuildDiagram, err, ErrConstructFailed)
		}
	}
	d.SetInputs(inputs)
	d.SetOutputs(outputs)

	return d, nil
}
