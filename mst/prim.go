// SPDX-License-Identifier: MIT

package mst

import (
	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/graph"
	"github.com/katalvlaran/extnum/numeric"
)

// Prim grows a minimum spanning tree from root using a key array.
//
// An edge of weight Infinity never improves a key and is therefore treated
// as absent.
//
// Error Conditions:
//   - ErrNilGraph, ErrDirectedGraph, ErrEmptyGraph, ErrBadRoot: invalid input.
//   - ErrDisconnected: some vertex is unreachable; the partial Tree is returned.
//
// Steps:
//  1. Validate the graph and root.
//  2. Initialize key[v] = Infinity, parent[v] = NoParent, key[root] = Finite(0).
//  3. Repeat |V| times:
//     a. Pick the non-tree vertex u with the smallest key.
//     b. If key[u] is Infinity, nothing else is reachable: stop.
//     c. Admit u and record the edge parent[u]–u.
//     d. For every neighbour v not in the tree, if w(u,v) < key[v] then
//     key[v] = w(u,v) and parent[v] = u.
//  4. Sum the keys into Total.
//
// Complexity: O(V² + E) time, O(V) memory.
func Prim[T numeric.Unsigned[T]](g *graph.Graph[extended.NonNegative[T]], root int) (Tree[T], error) {
	// 1. Validate input.
	n, err := validate(g, root)
	if err != nil {
		return Tree[T]{}, err
	}

	// 2. Initialize the key array.
	t := newTree[T](n, root)
	inTree := make([]bool, n)
	via := make([]graph.Edge[extended.NonNegative[T]], n)

	// 3. Main loop: one vertex per round.
	for round := 0; round < n; round++ {
		// 3a. Linear scan for the lightest fringe vertex.
		u := minKey(t.Key, inTree)
		// 3b. Only Infinity keys remain.
		if u < 0 {
			tracer().Debugf("prim: %d vertices admitted, rest unreachable", round)
			break
		}
		// 3c. Admit u.
		inTree[u] = true
		if t.Parent[u] != NoParent {
			t.Edges = append(t.Edges, via[u])
		}
		tracer().Debugf("prim: admit %d (parent %d, key %v)", u, t.Parent[u], t.Key[u])

		// 3d. Relax the edges leaving u.
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return Tree[T]{}, err
		}
		for _, e := range nbrs {
			v := e.To
			if inTree[v] || !e.Weight.Less(t.Key[v]) {
				continue
			}
			t.Key[v] = e.Weight
			t.Parent[v] = u
			via[v] = e
		}
	}

	// 4. Total weight and connectivity.
	err = t.finish()
	tracer().Infof("prim: root %d, total %v, %d tree edges", root, t.Total, len(t.Edges))

	return t, err
}

// minKey returns the non-tree vertex with the smallest finite key, or -1.
// Ties go to the lower index.
func minKey[T numeric.Unsigned[T]](key []extended.NonNegative[T], inTree []bool) int {
	best := -1
	for v := range key {
		if inTree[v] || key[v].IsInf() {
			continue
		}
		if best < 0 || key[v].Less(key[best]) {
			best = v
		}
	}

	return best
}
