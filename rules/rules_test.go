package rules_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxrewrite/diagram"
	"github.com/katalvlaran/zxrewrite/graphjson"
	"github.com/katalvlaran/zxrewrite/rules"
)

const fixturePath = "testdata/rewrites-2qb-lc.json"

// wireDoc is b0(in) - v0 -H- v1 - b1(out), with v1 an X spider.
const wireDoc = `{"wire_vertices":{"b0":{"annotation":{"boundary":true,"input":0}},"b1":{"annotation":{"boundary":true,"output":0}}},` +
	`"node_vertices":{"v0":{"data":{"type":"Z"}},"v1":{"data":{"type":"X","value":"\\pi"}}},` +
	`"undir_edges":{"e0":{"src":"b0","tgt":"v0"},"e1":{"src":"v0","tgt":"v1","type":"hadamard"},"e2":{"src":"v1","tgt":"b1"}}}`

func loadFixture(t *testing.T) []rules.RewriteRuleSet {
	t.Helper()
	sets, err := rules.LoadFile(fixturePath)
	require.NoError(t, err)
	return sets
}

func TestNameTable(t *testing.T) {
	tbl := rules.NewNameTable()
	require.NoError(t, tbl.Put("a", 3))
	require.NoError(t, tbl.Put("b", 1))
	assert.ErrorIs(t, tbl.Put("a", 7), rules.ErrDuplicateName)
	assert.ErrorIs(t, tbl.Put("c", 1), rules.ErrDuplicateVertex)

	v, ok := tbl.Vertex("a")
	assert.True(t, ok)
	assert.Equal(t, diagram.V(3), v)
	n, ok := tbl.Name(1)
	assert.True(t, ok)
	assert.Equal(t, "b", n)
	_, ok = tbl.Name(2)
	assert.False(t, ok)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"a", "b"}, tbl.Names())
}

func TestDecodedDiagram_Lookup(t *testing.T) {
	dd, err := rules.DecodeDiagram(wireDoc)
	require.NoError(t, err)

	v, err := dd.VertexByName("v1")
	require.NoError(t, err)
	ty, _ := dd.Diagram.VertexType(v)
	assert.Equal(t, diagram.X, ty)
	name, err := dd.NameOf(v)
	require.NoError(t, err)
	assert.Equal(t, "v1", name)

	_, err = dd.VertexByName("zz")
	assert.ErrorIs(t, err, rules.ErrUnknownName)
	_, err = dd.NameOf(99)
	assert.ErrorIs(t, err, rules.ErrUnknownVertex)
}

func TestDecodedDiagram_EncodeKeepsNames(t *testing.T) {
	dd, err := rules.DecodeDiagram(wireDoc)
	require.NoError(t, err)
	doc, err := dd.Encode()
	require.NoError(t, err)

	again, err := rules.DecodeDiagram(doc)
	require.NoError(t, err)
	assert.Equal(t, dd.Names.Names(), again.Names.Names())
	assert.True(t, dd.Diagram.Equal(again.Diagram))
}

func TestRewriteIos_JSON(t *testing.T) {
	var io rules.RewriteIos
	require.NoError(t, io.UnmarshalJSON([]byte(`[["a","b"],["c"]]`)))
	assert.Equal(t, rules.RewriteIos{Inputs: []string{"a", "b"}, Outputs: []string{"c"}}, io)

	out, err := io.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[["a","b"],["c"]]`, string(out))

	out, err = rules.RewriteIos{}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[[],[]]`, string(out))

	assert.ErrorIs(t, io.UnmarshalJSON([]byte(`[["a"]]`)), rules.ErrMalformedRuleFile)
}

func TestLoadFixture(t *testing.T) {
	sets := loadFixture(t)
	require.Len(t, sets, 3)

	wantOrientations := []int{2, 2, 1}
	wantRhss := []int{2, 2, 1}
	wantBoundary := [][]diagram.V{{2, 4}, {4, 5, 8, 9}, {2, 5}}
	for i := range sets {
		rs := &sets[i]
		assert.NoError(t, rs.Validate(), "rule set %d", i)
		assert.Len(t, rs.LhsIos, wantOrientations[i])
		assert.Len(t, rs.Rhss, wantRhss[i])

		lb, err := rules.Boundary(rs.LHS().G)
		require.NoError(t, err)
		assert.Equal(t, wantBoundary[i], lb)

		// Arity invariant.
		for j := range rs.Rhss {
			rb, err := rules.Boundary(rs.Rhss[j].Decoded())
			require.NoError(t, err)
			assert.Len(t, rb, len(lb), "rule set %d rhs %d", i, j)
		}
	}

	assert.Equal(t, []int{3}, sets[0].Rhss[1].Unfused)
	assert.Nil(t, sets[0].Rhss[0].Unfused)
	assert.Equal(t, []int{6}, sets[1].Rhss[0].Unfused1)
	assert.Equal(t, []int{7}, sets[1].Rhss[0].Unfused2)
	assert.Equal(t, 2, sets[2].Rhss[0].Reduction)

	p, _ := sets[2].Lhs.Diagram.Phase(3)
	assert.Equal(t, diagram.NewPhase(1, 4), p)
}

func TestOrientationsTranslate(t *testing.T) {
	sets := loadFixture(t)
	os, err := rules.Orientations(sets[1].LHS())
	require.NoError(t, err)
	require.Len(t, os, 2)
	assert.Equal(t, rules.Orientation{Inputs: []diagram.V{0, 1}, Outputs: []diagram.V{2, 3}}, os[0])
	assert.Equal(t, rules.Orientation{Inputs: []diagram.V{0, 3}, Outputs: []diagram.V{2, 1}}, os[1])

	p := rules.Instantiate(sets[1].LHS().G, os[1])
	assert.Equal(t, []diagram.V{0, 3}, p.Inputs())
	assert.Equal(t, []diagram.V{0, 1}, sets[1].Lhs.Diagram.Inputs(), "instantiation leaves the rule untouched")

	_, err = rules.RewriteIos{Inputs: []string{"v0"}}.Translate(&sets[1].Lhs)
	assert.ErrorIs(t, err, rules.ErrBadOrientation)
	_, err = rules.RewriteIos{Inputs: []string{"nope"}}.Translate(&sets[1].Lhs)
	assert.ErrorIs(t, err, rules.ErrUnknownName)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	sets := loadFixture(t)
	var buf bytes.Buffer
	require.NoError(t, rules.Write(&buf, sets))

	// Absent optional lists stay absent.
	assert.Equal(t, 1, strings.Count(buf.String(), `"unfused":`))
	assert.Equal(t, 1, strings.Count(buf.String(), `"unfused1":`))

	again, err := rules.Read(&buf)
	require.NoError(t, err)
	require.Len(t, again, len(sets))
	for i := range sets {
		assert.True(t, sets[i].Lhs.Diagram.Equal(again[i].Lhs.Diagram), "lhs %d", i)
		assert.Equal(t, sets[i].LhsIos, again[i].LhsIos)
		for j := range sets[i].Rhss {
			a, b := sets[i].Rhss[j], again[i].Rhss[j]
			assert.True(t, a.G.Diagram.Equal(b.G.Diagram), "rhs %d.%d", i, j)
			assert.Equal(t, a.Reduction, b.Reduction)
			assert.Equal(t, a.Unfused, b.Unfused)
			assert.Equal(t, a.Unfused1, b.Unfused1)
			assert.Equal(t, a.Unfused2, b.Unfused2)
		}
	}
}

func TestSaveLoadFile(t *testing.T) {
	sets := loadFixture(t)
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, rules.SaveFile(path, sets[:1]))
	again, err := rules.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.NoError(t, again[0].Validate())

	_, err = rules.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRead_ErrorsNameTheRecord(t *testing.T) {
	good := `{"lhs":` + quote(wireDoc) + `,"lhs_ios":[[["b0"],["b1"]]],"rhss":[]}`
	badRhs := `{"lhs":` + quote(wireDoc) + `,"lhs_ios":[[["b0"],["b1"]]],` +
		`"rhss":[{"reduction":0,"g":` + quote(wireDoc) + `,"ios":[]},{"reduction":0,"g":"{not json","ios":[]}]}`

	_, err := rules.Read(strings.NewReader("[" + good + "," + badRhs + "]"))
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrMalformedRuleFile)
	assert.ErrorIs(t, err, graphjson.ErrMalformedDocument)
	assert.Contains(t, err.Error(), "rule set 1")
	assert.Contains(t, err.Error(), "rhs 1")

	_, err = rules.Read(strings.NewReader(`{"lhs":1}`))
	assert.ErrorIs(t, err, rules.ErrMalformedRuleFile)

	_, err = rules.Read(strings.NewReader(`[{"lhs_ios":[]}]`))
	assert.ErrorIs(t, err, rules.ErrMalformedRuleFile)
	assert.Contains(t, err.Error(), "rule set 0")

	_, err = rules.Read(strings.NewReader(`[{"lhs":null,"lhs_ios":[]}]`))
	assert.ErrorIs(t, err, rules.ErrMalformedRuleFile)

	for _, rhs := range []string{`{"reduction":0,"ios":[]}`, `{"reduction":0,"g":null,"ios":[]}`} {
		noG := `{"lhs":` + quote(wireDoc) + `,"lhs_ios":[[["b0"],["b1"]]],"rhss":[` + rhs + `]}`
		_, err = rules.Read(strings.NewReader("[" + good + "," + noG + "]"))
		require.Error(t, err, rhs)
		assert.ErrorIs(t, err, rules.ErrMalformedRuleFile)
		assert.Contains(t, err.Error(), "rule set 1")
		assert.Contains(t, err.Error(), "rhs 0")
		assert.Contains(t, err.Error(), "missing g")
	}
}

func TestRewriteRhs_EmptyListsSurvive(t *testing.T) {
	doc := `[{"lhs":` + quote(wireDoc) + `,"lhs_ios":[[["b0"],["b1"]]],` +
		`"rhss":[{"reduction":1,"g":` + quote(wireDoc) + `,"ios":[[["b0"],["b1"]]],"unfused":[],"unfused2":[1]}]}]`
	sets, err := rules.Read(strings.NewReader(doc))
	require.NoError(t, err)
	rhs := sets[0].Rhss[0]
	assert.NotNil(t, rhs.Unfused)
	assert.Empty(t, rhs.Unfused)
	assert.Nil(t, rhs.Unfused1)
	assert.Equal(t, []int{1}, rhs.Unfused2)

	var buf bytes.Buffer
	require.NoError(t, rules.Write(&buf, sets))
	assert.Contains(t, buf.String(), `"unfused":[]`)
	assert.NotContains(t, buf.String(), `"unfused1"`)

	again, err := rules.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, rhs.Unfused, again[0].Rhss[0].Unfused)
	assert.NotNil(t, again[0].Rhss[0].Unfused)
	assert.Nil(t, again[0].Rhss[0].Unfused1)
	assert.Equal(t, 1, again[0].Rhss[0].Reduction)
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s))
	b.WriteByte('"')
	return b.String()
}
