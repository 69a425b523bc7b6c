package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxrewrite/builder"
	"github.com/katalvlaran/zxrewrite/causal"
	"github.com/katalvlaran/zxrewrite/cost"
	"github.com/katalvlaran/zxrewrite/diagram"
	"github.com/katalvlaran/zxrewrite/graphjson"
)

const fixtureRules = "../../rules/testdata/rewrites-2qb-lc.json"

// run executes the command tree with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// twoChainsFile writes the 12-vertex regression diagram as a graph document.
func twoChainsFile(t *testing.T) string {
	t.Helper()
	var zero diagram.Phase
	d, err := builder.BuildDiagram(2, nil,
		builder.CZ(0, 1),
		builder.J(0, zero), builder.J(1, zero),
		builder.J(0, zero), builder.J(1, zero),
		builder.CZ(0, 1),
		builder.J(0, zero), builder.J(1, zero),
	)
	require.NoError(t, err)
	doc, err := graphjson.Encode(d, nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "two-chains.json")
	require.NoError(t, os.WriteFile(path, doc, 0o644))
	return path
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--rules", fixtureRules)
	require.NoError(t, err)
	assert.Contains(t, out, "3 rule sets, 5 patterns")

	_, err = run(t, "check")
	assert.ErrorIs(t, err, ErrBadConfig)

	_, err = run(t, "check", "--rules", fixtureRules, "--metric", "depth")
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestCheck_FlagsOverrideConfig(t *testing.T) {
	cfgPath := writeFile(t, "zx.yaml", "rules: /does/not/exist.json\nworkers: 2\n")
	_, err := run(t, "check", "--config", cfgPath)
	assert.Error(t, err)

	out, err := run(t, "check", "--config", cfgPath, "--rules", fixtureRules)
	require.NoError(t, err)
	assert.Contains(t, out, "5 patterns")
}

func TestCandidates(t *testing.T) {
	target := twoChainsFile(t)
	metrics := filepath.Join(t.TempDir(), "zx.prom")

	out, err := run(t, "candidates", "--rules", fixtureRules, "--workers", "3",
		"--flow-check", "--metrics-file", metrics, target)
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 17)
	assert.True(t, strings.HasPrefix(rows[0], "INDEX"))

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "zxrewrite_rewriter_candidates_total 16")
	assert.Contains(t, string(prom), `zxrewrite_rewriter_apply_total{outcome="ok"} 16`)

	out, err = run(t, "candidates", "--rules", fixtureRules, "--improving", target)
	require.NoError(t, err)
	rows = lines(out)
	require.Len(t, rows, 5)
	for _, r := range rows[1:] {
		f := strings.Fields(r)
		assert.Equal(t, "-1", f[len(f)-1])
	}
}

func TestApply(t *testing.T) {
	target := twoChainsFile(t)
	dst := filepath.Join(t.TempDir(), "out.json")

	_, err := run(t, "apply", "--rules", fixtureRules, "--index", "0", "-o", dst, target)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	d, _, err := graphjson.Decode(data)
	require.NoError(t, err)
	assert.Len(t, d.Inputs(), 2)
	assert.Len(t, d.Outputs(), 2)
	assert.NoError(t, d.CheckNormalForm())
	assert.Equal(t, 2, cost.TwoQubitGateCount{}.Cost(d))

	_, err = run(t, "apply", "--rules", fixtureRules, "--index", "16", target)
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestGenerate(t *testing.T) {
	args := []string{"generate", "--qubits", "3", "--depth", "4", "--seed", "7"}
	a, err := run(t, args...)
	require.NoError(t, err)
	b, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	d, _, err := graphjson.Decode([]byte(a))
	require.NoError(t, err)
	assert.Len(t, d.Inputs(), 3)
	_, err = causal.Compute(d)
	assert.NoError(t, err)

	_, err = run(t, "generate", "--cz-prob", "2")
	assert.ErrorIs(t, err, ErrBadConfig)
	_, err = run(t, "generate", "--qubits", "0")
	assert.ErrorIs(t, err, builder.ErrTooFewQubits)
}
