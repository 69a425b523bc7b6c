package causal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxrewrite/causal"
	"github.com/katalvlaran/zxrewrite/diagram"
)

// twoChains builds the 12-vertex regression diagram: inputs 0,1; spiders 2..9
// in two chains 2-4-6-8 and 3-5-7-9 joined by 2-3 and 6-7; outputs 10,11.
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

// square is a-b, b-c, c-d, d-a with inputs a,c and outputs b,d: every
// candidate successor assignment creates a cycle.
func square(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := diagram.New()
	a, b, c, e := d.AddVertex(diagram.Z), d.AddVertex(diagram.Z), d.AddVertex(diagram.Z), d.AddVertex(diagram.Z)
	for _, p := range [][2]diagram.V{{a, b}, {b, c}, {c, e}, {e, a}} {
		require.NoError(t, d.AddEdge(p[0], p[1], diagram.Hadamard))
	}
	d.SetInputs([]diagram.V{a, c})
	d.SetOutputs([]diagram.V{b, e})

	return d
}

func TestCompute_TwoChains(t *testing.T) {
	d := twoChains(t)
	f, err := causal.Compute(d)
	require.NoError(t, err)

	want := map[diagram.V]diagram.V{0: 2, 2: 4, 4: 6, 6: 8, 8: 10, 1: 3, 3: 5, 5: 7, 7: 9, 9: 11}
	for u, v := range want {
		got, ok := f.Successor(u)
		require.True(t, ok, "successor of %d", u)
		assert.Equal(t, v, got, "successor of %d", u)
		p, ok := f.Predecessor(v)
		require.True(t, ok)
		assert.Equal(t, u, p)
	}
	assert.Equal(t, len(want), f.Len())
	_, ok := f.Successor(10)
	assert.False(t, ok)

	assert.Equal(t, [][]diagram.V{{10, 11}, {8, 9}, {6, 7}, {4, 5}, {2, 3}, {0, 1}}, f.Layers())
	k, _ := f.Depth(4)
	assert.Equal(t, 3, k)

	require.NoError(t, f.Verify(d))
	order, err := f.Order(d)
	require.NoError(t, err)
	pos := make(map[diagram.V]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for u, v := range want {
		assert.Less(t, pos[u], pos[v])
	}
}

func TestCompute_NoFlow(t *testing.T) {
	// Two inputs merging into one spider that feeds two outputs.
	d := diagram.New()
	in0, in1 := d.AddVertex(diagram.Boundary), d.AddVertex(diagram.Boundary)
	a, b, c, e := d.AddVertex(diagram.Z), d.AddVertex(diagram.Z), d.AddVertex(diagram.Z), d.AddVertex(diagram.Z)
	out0, out1 := d.AddVertex(diagram.Boundary), d.AddVertex(diagram.Boundary)
	require.NoError(t, d.AddEdge(in0, a, diagram.Simple))
	require.NoError(t, d.AddEdge(in1, b, diagram.Simple))
	require.NoError(t, d.AddEdge(a, c, diagram.Hadamard))
	require.NoError(t, d.AddEdge(b, c, diagram.Hadamard))
	require.NoError(t, d.AddEdge(c, e, diagram.Hadamard))
	require.NoError(t, d.AddEdge(c, out0, diagram.Simple))
	require.NoError(t, d.AddEdge(e, out1, diagram.Simple))
	d.SetInputs([]diagram.V{in0, in1})
	d.SetOutputs([]diagram.V{out0, out1})

	_, err := causal.Compute(d)
	assert.ErrorIs(t, err, causal.ErrNoFlow)

	_, err = causal.Compute(square(t))
	assert.ErrorIs(t, err, causal.ErrNoFlow)
}

func TestCompute_MoreInputsThanOutputs(t *testing.T) {
	d := diagram.New()
	a, b, c := d.AddVertex(diagram.Boundary), d.AddVertex(diagram.Boundary), d.AddVertex(diagram.Z)
	d.SetInputs([]diagram.V{a, b})
	d.SetOutputs([]diagram.V{c})
	_, err := causal.Compute(d)
	assert.ErrorIs(t, err, causal.ErrNoFlow)
}

func TestCompute_Identity(t *testing.T) {
	// A bare wire: one boundary that is both input and output.
	d := diagram.New()
	w := d.AddVertex(diagram.Boundary)
	d.SetInputs([]diagram.V{w})
	d.SetOutputs([]diagram.V{w})
	f, err := causal.Compute(d)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
	assert.NoError(t, f.Verify(d))
}

func TestVerify_Rejects(t *testing.T) {
	sq := square(t)
	cyclic := causal.New(map[diagram.V]diagram.V{0: 1, 2: 3})
	assert.ErrorIs(t, cyclic.Verify(sq), causal.ErrInvalidFlow)

	d := twoChains(t)
	good, err := causal.Compute(d)
	require.NoError(t, err)
	succ := map[diagram.V]diagram.V{}
	for _, v := range d.Vertices() {
		if s, ok := good.Successor(v); ok {
			succ[v] = s
		}
	}

	cases := map[string]func(m map[diagram.V]diagram.V){
		"missing successor": func(m map[diagram.V]diagram.V) { delete(m, 4) },
		"not adjacent":      func(m map[diagram.V]diagram.V) { m[4] = 9 },
		"output successor":  func(m map[diagram.V]diagram.V) { m[10] = 8 },
		"input successor":   func(m map[diagram.V]diagram.V) { m[2] = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := make(map[diagram.V]diagram.V, len(succ))
			for k, v := range succ {
				m[k] = v
			}
			mutate(m)
			assert.ErrorIs(t, causal.New(m).Verify(d), causal.ErrInvalidFlow)
		})
	}
}
