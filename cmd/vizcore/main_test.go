package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Interactive(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--tree.verify", "--log.level", "error"},
		strings.NewReader("tree insert 4\ngraph node\nquit\n"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "> insert 4: attach 4, recolor 4→black\n")
	assert.Contains(t, stdout.String(), "tree is a valid red-black tree (black height 1)")
	assert.Contains(t, stdout.String(), "add-node 1")
}

func TestRun_Scenario(t *testing.T) {
	dir := t.TempDir()
	pass := filepath.Join(dir, "pass.yaml")
	fail := filepath.Join(dir, "fail.yaml")
	require.NoError(t, os.WriteFile(pass, []byte(`
name: pass
steps:
  - tree: {op: insert, values: [2, 1, 3]}
  - tree: {op: show}
    expect: "2 (black)"
`), 0o600))
	require.NoError(t, os.WriteFile(fail, []byte(`
name: fail
steps:
  - tree: {op: find, values: [1]}
    expect: found 1
`), 0o600))

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"--log.level", "error", "-s", pass}, nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "L 1 (red)")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"--log.level", "error", "-s", fail}, nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "step 1")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"--log.level", "error", "-s", filepath.Join(dir, "missing.yaml")}, nil, &stdout, &stderr))
}

func TestRun_BadSettings(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"--graph.weight=-3"}, nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "graph.weight")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"--bogus"}, nil, &stdout, &stderr))
}
