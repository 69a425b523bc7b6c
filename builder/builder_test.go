package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxrewrite/builder"
	"github.com/katalvlaran/zxrewrite/causal"
	"github.com/katalvlaran/zxrewrite/diagram"
)

// twoChains is the 12-vertex regression diagram built by hand.
func twoChains(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := diagram.New()
	for i := 0; i < 12; i++ {
		ty := diagram.Z
		if i < 2 || i > 9 {
			ty = diagram.Boundary
		}
		d.AddVertex(ty)
	}
	for _, e := range [][2]diagram.V{{0, 2}, {1, 3}, {8, 10}, {9, 11}} {
		require.NoError(t, d.AddEdge(e[0], e[1], diagram.Simple))
	}
	for _, e := range [][2]diagram.V{{2, 4}, {3, 5}, {2, 3}, {4, 6}, {5, 7}, {6, 8}, {7, 9}, {6, 7}} {
		require.NoError(t, d.AddEdge(e[0], e[1], diagram.Hadamard))
	}
	d.SetInputs([]diagram.V{0, 1})
	d.SetOutputs([]diagram.V{10, 11})

	return d
}

func TestBuildDiagram_TwoChains(t *testing.T) {
	var zero diagram.Phase
	d, err := builder.BuildDiagram(2, nil,
		builder.CZ(0, 1),
		builder.J(0, zero), builder.J(1, zero),
		builder.J(0, zero), builder.J(1, zero),
		builder.CZ(0, 1),
		builder.J(0, zero), builder.J(1, zero),
	)
	require.NoError(t, err)
	assert.True(t, d.Equal(twoChains(t)))
	require.NoError(t, d.CheckNormalForm())
}

func TestBuildDiagram_CZCancels(t *testing.T) {
	d, err := builder.BuildDiagram(2, nil, builder.CZ(0, 1), builder.CZ(1, 0))
	require.NoError(t, err)
	assert.False(t, d.HasEdge(2, 3))
	assert.Equal(t, 4, d.NumEdges())
}

func TestBuildDiagram_Phase(t *testing.T) {
	d, err := builder.BuildDiagram(1, nil,
		builder.Phase(0, diagram.NewPhase(1, 4)),
		builder.Phase(0, diagram.NewPhase(1, 4)),
		builder.J(0, diagram.Pi()),
	)
	require.NoError(t, err)
	p, _ := d.Phase(1)
	assert.Equal(t, diagram.NewPhase(1, 2), p)
	p, _ = d.Phase(2)
	assert.Equal(t, diagram.Pi(), p)
	assert.Equal(t, []diagram.V{3}, d.Outputs())
}

func TestBuildDiagram_Errors(t *testing.T) {
	var zero diagram.Phase
	cases := []struct {
		name   string
		qubits int
		opts   []builder.BuilderOption
		cons   []builder.Constructor
		want   error
	}{
		{"no qubits", 0, nil, nil, builder.ErrTooFewQubits},
		{"J out of range", 2, nil, []builder.Constructor{builder.J(2, zero)}, builder.ErrQubitRange},
		{"negative qubit", 2, nil, []builder.Constructor{builder.Phase(-1, zero)}, builder.ErrQubitRange},
		{"CZ same qubit", 2, nil, []builder.Constructor{builder.CZ(1, 1)}, builder.ErrSameQubit},
		{"CZ out of range", 2, nil, []builder.Constructor{builder.CZ(0, 5)}, builder.ErrQubitRange},
		{"nil constructor", 1, nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"random without rng", 2, nil, []builder.Constructor{builder.RandomLayers(3)}, builder.ErrNeedRandSource},
		{"random zero depth", 2, []builder.BuilderOption{builder.WithSeed(1)},
			[]builder.Constructor{builder.RandomLayers(0)}, builder.ErrBadDepth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildDiagram(tc.qubits, tc.opts, tc.cons...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomLayers(t *testing.T) {
	const qubits, depth = 4, 5
	opts := []builder.BuilderOption{builder.WithSeed(2024), builder.WithCZProbability(0.7)}
	a, err := builder.BuildDiagram(qubits, opts, builder.RandomLayers(depth))
	require.NoError(t, err)
	b, err := builder.BuildDiagram(qubits, []builder.BuilderOption{builder.WithSeed(2024), builder.WithCZProbability(0.7)},
		builder.RandomLayers(depth))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must give the same diagram")

	s := a.Stats()
	assert.Equal(t, 2*qubits, s.Boundaries)
	assert.Equal(t, qubits*(depth+1), s.ZSpiders)
	require.NoError(t, a.CheckNormalForm())

	f, err := causal.Compute(a)
	require.NoError(t, err)
	assert.NoError(t, f.Verify(a))

	// Clifford grid only.
	c, err := builder.BuildDiagram(2, []builder.BuilderOption{builder.WithSeed(1), builder.WithPhaseDenominator(2)},
		builder.RandomLayers(depth))
	require.NoError(t, err)
	for _, v := range c.Vertices() {
		p, _ := c.Phase(v)
		assert.LessOrEqual(t, p.Den(), int64(2))
	}
}
