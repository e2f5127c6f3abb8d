// SPDX-License-Identifier: MIT

package mst_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/graph"
	"github.com/katalvlaran/extnum/mst"
	"github.com/katalvlaran/extnum/numeric"
)

type wedge struct {
	u, v int
	w    uint32
}

// build constructs an undirected graph over n vertices with uint32 weights.
func build(t testing.TB, n int, edges []wedge) *graph.Graph[extended.Uint32] {
	g, err := graph.New[extended.Uint32](n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, extended.FromUint32(e.w))
		require.NoError(t, err)
	}

	return g
}

// basicEdges is a 5-vertex graph whose MST is 0–1, 1–2, 1–4, 0–3 (total 16).
var basicEdges = []wedge{
	{0, 1, 2}, {0, 3, 6}, {1, 2, 3}, {1, 3, 8}, {1, 4, 5}, {2, 4, 7}, {3, 4, 9},
}

// maxWeightEdges reaches vertex 3 only through edges of weight MaxUint32.
var maxWeightEdges = []wedge{
	{0, 1, 2}, {1, 2, 3}, {0, 2, 1}, {1, 3, math.MaxUint32}, {2, 3, math.MaxUint32},
}

// naivePrim is Prim with a bare math.MaxUint32 sentinel standing in for
// infinity. It returns parents with -1 for "none".
func naivePrim(n int, edges []wedge) []int {
	adj := make([][]wedge, n)
	for _, e := range edges {
		adj[e.u] = append(adj[e.u], wedge{e.u, e.v, e.w})
		adj[e.v] = append(adj[e.v], wedge{e.v, e.u, e.w})
	}
	key := make([]uint32, n)
	parent := make([]int, n)
	in := make([]bool, n)
	for v := range key {
		key[v], parent[v] = math.MaxUint32, -1
	}
	key[0] = 0
	for round := 0; round < n; round++ {
		minV, u := uint32(math.MaxUint32), 0
		for v := 0; v < n; v++ {
			if !in[v] && key[v] < minV {
				minV, u = key[v], v
			}
		}
		in[u] = true
		for _, e := range adj[u] {
			if !in[e.v] && e.w < key[e.v] {
				key[e.v], parent[e.v] = e.w, u
			}
		}
	}

	return parent
}

// TestPrim_Basic checks parents and total on a small graph.
func TestPrim_Basic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extnum")
	defer teardown()

	tree, err := mst.Prim(build(t, 5, basicEdges), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{mst.NoParent, 0, 1, 0, 1}, tree.Parent)
	assert.True(t, tree.Total.Equal(extended.FromUint32(16)))
	assert.Len(t, tree.Edges, 4)
	assert.True(t, tree.Spanning())
	assert.True(t, tree.Key[0].IsZero())
}

// TestPrim_MaxWeightEdges shows extended keys connect a vertex reachable
// only through MaxUint32 edges, where the sentinel version cannot.
func TestPrim_MaxWeightEdges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extnum")
	defer teardown()

	tree, err := mst.Prim(build(t, 4, maxWeightEdges), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{mst.NoParent, 0, 0, 2}, tree.Parent)
	assert.True(t, tree.Key[3].Equal(extended.FromUint32(math.MaxUint32)))
	assert.True(t, tree.Spanning())
	// 1 + 2 + MaxUint32 does not fit a uint32 and is promoted
	assert.True(t, tree.Total.IsInf())

	naive := naivePrim(4, maxWeightEdges)
	assert.Equal(t, 0, naive[1])
	assert.Equal(t, 0, naive[2])
	assert.Equal(t, -1, naive[3], "the sentinel version leaves vertex 3 out")
}

// TestTotalOverflowStillSpanning checks that an infinite Total caused by
// overflow alone comes with a spanning tree and no error.
func TestTotalOverflowStillSpanning(t *testing.T) {
	g := build(t, 3, []wedge{{0, 1, math.MaxUint32}, {1, 2, math.MaxUint32}})
	for _, method := range []string{mst.MethodPrim, mst.MethodKruskal} {
		tree, err := mst.Compute(g, mst.WithMethod(method))
		require.NoError(t, err, method)
		assert.True(t, tree.Total.IsInf(), method)
		assert.True(t, tree.Spanning(), method)
		for v, k := range tree.Key {
			assert.Truef(t, k.IsFinite(), "%s: key[%d] = %v", method, v, k)
		}
	}
}

// TestKruskal_AgreesWithPrim compares totals on a random connected graph.
func TestKruskal_AgreesWithPrim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extnum")
	defer teardown()

	r := rand.New(rand.NewSource(42))
	const n = 60
	var edges []wedge
	for v := 1; v < n; v++ {
		edges = append(edges, wedge{v - 1, v, uint32(1 + r.Intn(50))})
	}
	for i := 0; i < 200; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u != v {
			edges = append(edges, wedge{u, v, uint32(1 + r.Intn(100))})
		}
	}
	g := build(t, n, edges)

	p, err := mst.Prim(g, 0)
	require.NoError(t, err)
	k, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Truef(t, p.Total.Equal(k.Total), "prim %v, kruskal %v", p.Total, k.Total)
	assert.Len(t, k.Edges, n-1)
	assert.Equal(t, mst.NoParent, k.Parent[0])
}

// TestKruskal_Basic checks Kruskal's orientation matches Prim's parents.
func TestKruskal_Basic(t *testing.T) {
	tree, err := mst.Kruskal(build(t, 5, basicEdges))
	require.NoError(t, err)
	assert.Equal(t, []int{mst.NoParent, 0, 1, 0, 1}, tree.Parent)
	assert.True(t, tree.Total.Equal(extended.FromUint32(16)))
}

// TestDisconnected verifies both algorithms return the partial tree.
func TestDisconnected(t *testing.T) {
	g := build(t, 4, []wedge{{0, 1, 4}, {2, 3, 1}})
	for _, method := range []string{mst.MethodPrim, mst.MethodKruskal} {
		t.Run(method, func(t *testing.T) {
			tree, err := mst.Compute(g, mst.WithMethod(method))
			assert.ErrorIs(t, err, mst.ErrDisconnected)
			assert.Equal(t, []int{mst.NoParent, 0, mst.NoParent, mst.NoParent}, tree.Parent)
			assert.True(t, tree.Key[2].IsInf())
			assert.True(t, tree.Total.IsInf())
			assert.False(t, tree.Spanning())
		})
	}
}

// TestInfiniteEdgeIsAbsent checks that an Infinity weight never joins a tree.
func TestInfiniteEdgeIsAbsent(t *testing.T) {
	g, _ := graph.New[extended.Uint32](2)
	_, _ = g.AddEdge(0, 1, extended.Inf[numeric.Uint32]())
	_, err := mst.Prim(g, 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

// TestValidation covers the input errors.
func TestValidation(t *testing.T) {
	_, err := mst.Prim[numeric.Uint32](nil, 0)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	empty, _ := graph.New[extended.Uint32](0)
	_, err = mst.Kruskal(empty)
	assert.ErrorIs(t, err, mst.ErrEmptyGraph)

	g := build(t, 3, []wedge{{0, 1, 1}, {1, 2, 1}})
	_, err = mst.Prim(g, 3)
	assert.ErrorIs(t, err, mst.ErrBadRoot)
	_, err = mst.Compute(g, mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)

	dg, _ := graph.New[extended.Uint32](2, graph.WithDirected())
	_, err = mst.Prim(dg, 0)
	assert.ErrorIs(t, err, mst.ErrDirectedGraph)

	single, _ := graph.New[extended.Uint32](1)
	tree, err := mst.Prim(single, 0)
	require.NoError(t, err)
	assert.True(t, tree.Total.IsZero())
	assert.Empty(t, tree.Edges)
}

// TestCompute_Root checks that WithRoot reorients the tree.
func TestCompute_Root(t *testing.T) {
	g := build(t, 5, basicEdges)
	for _, method := range []string{mst.MethodPrim, mst.MethodKruskal} {
		tree, err := mst.Compute(g, mst.WithMethod(method), mst.WithRoot(4))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 4, 1, 0, mst.NoParent}, tree.Parent, method)
		assert.True(t, tree.Total.Equal(extended.FromUint32(16)), method)
	}
}
