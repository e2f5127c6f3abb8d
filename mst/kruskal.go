// SPDX-License-Identifier: MIT

package mst

import (
	"github.com/spakin/disjoint"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/graph"
	"github.com/katalvlaran/extnum/numeric"
)

// Kruskal computes a minimum spanning tree by merging components along the
// lightest edges first. The result is oriented from vertex 0; use Compute
// with WithRoot for another orientation.
//
// Self-loops and edges of weight Infinity are skipped.
//
// Error Conditions:
//   - ErrNilGraph, ErrDirectedGraph, ErrEmptyGraph: invalid input.
//   - ErrDisconnected: the graph has more than one component; the Tree
//     covers the component of vertex 0.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal[T numeric.Unsigned[T]](g *graph.Graph[extended.NonNegative[T]]) (Tree[T], error) {
	return kruskal(g, 0)
}

func kruskal[T numeric.Unsigned[T]](g *graph.Graph[extended.NonNegative[T]], root int) (Tree[T], error) {
	// 1. Validate input.
	n, err := validate(g, root)
	if err != nil {
		return Tree[T]{}, err
	}

	// 2. Collect candidate edges and sort them; the stable sort keeps ID
	//    order among equal weights.
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To || e.Weight.IsInf() {
			continue
		}
		edges = append(edges, e)
	}
	slices.SortStableFunc(edges, func(a, b graph.Edge[extended.NonNegative[T]]) bool {
		return a.Weight.Less(b.Weight)
	})

	// 3. One disjoint-set element per vertex.
	sets := make([]*disjoint.Element, n)
	for v := range sets {
		sets[v] = disjoint.NewElement()
	}

	// 4. Take every edge joining two components.
	adj := make([][]graph.Edge[extended.NonNegative[T]], n)
	taken := 0
	for _, e := range edges {
		if sets[e.From].Find() == sets[e.To].Find() {
			continue
		}
		disjoint.Union(sets[e.From], sets[e.To])
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], graph.Edge[extended.NonNegative[T]]{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight})
		tracer().Debugf("kruskal: take %d–%d (%v)", e.From, e.To, e.Weight)
		if taken++; taken == n-1 {
			break
		}
	}

	// 5. Orient the forest from root.
	t := newTree[T](n, root)
	orient(&t, adj)
	err = t.finish()
	tracer().Infof("kruskal: root %d, total %v, %d tree edges", root, t.Total, len(t.Edges))

	return t, err
}

// orient walks the chosen edges breadth-first from t.Root and fills
// Parent, Key and Edges.
func orient[T numeric.Unsigned[T]](t *Tree[T], adj [][]graph.Edge[extended.NonNegative[T]]) {
	seen := make([]bool, len(adj))
	seen[t.Root] = true
	queue := []int{t.Root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range adj[u] {
			if seen[e.To] {
				continue
			}
			seen[e.To] = true
			t.Parent[e.To] = u
			t.Key[e.To] = e.Weight
			t.Edges = append(t.Edges, e)
			queue = append(queue, e.To)
		}
	}
}
