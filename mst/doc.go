// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning trees with extended-number weights:
// Prim's key-array algorithm and Kruskal's sort-and-union algorithm over a
// *graph.Graph whose edges carry extended.NonNegative weights.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects every vertex with minimal total weight.
//
//   - Why extended weights?
//     The textbook Prim seeds every key with "infinity". With a plain
//     uint32 that means math.MaxUint32, and an edge whose real weight is
//     math.MaxUint32 can then never beat the sentinel: the vertex behind it
//     is silently left out of the tree. With extended.NonNegative keys the
//     seed is Infinity, every finite weight compares strictly below it, and
//     the tree is correct for the whole weight range.
//
// Algorithms Provided
//
//   - Prim(g, root) (Tree[T], error)
//
//   - Strategy: keep key[v] = cheapest known edge from the tree to v
//     (Infinity when none), repeatedly admit the non-tree vertex with the
//     smallest finite key and relax its neighbours.
//
//   - Complexity: O(V² + E) time, O(V) memory. Suited to dense graphs.
//
//   - Kruskal(g) (Tree[T], error)
//
//   - Strategy: stable-sort all edges by extended weight, then merge
//     components with a disjoint-set forest (github.com/spakin/disjoint),
//     skipping edges whose endpoints already share a component.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
// Both return a Tree oriented from the root: Parent[v] is v's parent or
// NoParent, Key[v] the weight of the edge to the parent (Finite(0) for the
// root), Total the sum of all keys.
//
// Total is Infinity whenever the sum does not fit T, including for a tree
// that spans every vertex. Spanning and ErrDisconnected are the
// connectivity signal, not Total.
//
// Error Conditions
//
//	ErrNilGraph      - g is nil.
//	ErrDirectedGraph - g was built WithDirected.
//	ErrEmptyGraph    - g has no vertices.
//	ErrBadRoot       - root is not a vertex of g.
//	ErrUnknownMethod - Compute was given an unrecognised method.
//	ErrDisconnected  - some vertex is unreachable from root. The Tree is
//	                   still returned: unreached vertices keep Key Infinity
//	                   and Parent NoParent, and Total is Infinity.
//
// Tracing goes to the "extnum" tracer of github.com/npillmayer/schuko.
package mst

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'extnum'.
func tracer() tracing.Trace {
	return tracing.Select("extnum")
}
