// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/extnum/mst"
)

const maxWeightInput = `4
0 1 2
1 2 3
0 2 1
1 3 18446744073709551615
2 3 18446744073709551615
`

const directedInput = `4   # A=0 B=1 C=2 D=3
0 1 2
0 2 1
2 1 1
1 3 3
2 3 5
`

const cycleInput = `5
0 1 1
1 2 -1
2 1 -1
2 3 1
`

// runString runs the command and returns stdout and stderr.
func runString(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(input), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		golden string
		input  string
		args   []string
	}{
		{"prim_basic", "", []string{"testdata/basic.txt"}},
		{"kruskal_root", "", []string{"-algo", "kruskal", "-root", "4", "testdata/basic.txt"}},
		{"prim_max_weight", maxWeightInput, nil},
		{"dijkstra_directed", directedInput, []string{"-algo", "dijkstra", "-directed"}},
		{"dijkstra_max", directedInput, []string{"-algo", "dijkstra", "-directed", "-max", "4"}},
		{"bellman_ford_cycle", cycleInput, []string{"-algo", "bellman-ford", "-directed"}},
	}
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			out, _, err := runString(t, tt.input, tt.args...)
			require.NoError(t, err)
			g := goldie.New(t)
			g.Assert(t, tt.golden, []byte(out))
		})
	}
}

// TestRender_Disconnected prints the partial tree and still fails.
func TestRender_Disconnected(t *testing.T) {
	out, _, err := runString(t, "4\n0 1 4\n2 3 1\n")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	g := goldie.New(t)
	g.Assert(t, "prim_disconnected", []byte(out))
}

func TestInfiniteWeightToken(t *testing.T) {
	out, _, err := runString(t, "2\n0 1 inf\n", "-algo", "kruskal")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Contains(t, out, "1       -       +infinity")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  error
	}{
		{"unknown algorithm", "1\n", []string{"-algo", "astar"}, ErrUsage},
		{"bad color", "1\n", []string{"-color", "sometimes"}, ErrUsage},
		{"unknown flag", "1\n", []string{"-fast"}, ErrUsage},
		{"two files", "1\n", []string{"a", "b"}, ErrUsage},
		{"negative cap", "1\n", []string{"-algo", "dijkstra", "-max", "-inf"}, ErrUsage},
		{"empty input", "# nothing\n", nil, ErrInput},
		{"bad count", "x\n", nil, ErrInput},
		{"short edge", "2\n0 1\n", nil, ErrInput},
		{"bad weight", "2\n0 1 heavy\n", nil, ErrInput},
		{"negative mst weight", "2\n0 1 -3\n", nil, ErrInput},
		{"vertex out of range", "2\n0 2 1\n", nil, ErrInput},
		{"loop", "2\n1 1 1\n", nil, ErrInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runString(t, tt.input, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, _, err := runString(t, "3\n0 1 1\n", "-root", "5")
	assert.ErrorIs(t, err, mst.ErrBadRoot)
	_, _, err = runString(t, "2\n0 1 1\n", "-directed")
	assert.ErrorIs(t, err, mst.ErrDirectedGraph)
}

func TestColor(t *testing.T) {
	out, _, err := runString(t, "2\n0 1 inf\n", "-algo", "dijkstra", "-color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, _, err = runString(t, "2\n0 1 inf\n", "-algo", "dijkstra", "-color", "never")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestTrace(t *testing.T) {
	_, stderr, err := runString(t, "3\n0 1 1\n1 2 1\n", "-trace", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "prim: admit 2")
}
