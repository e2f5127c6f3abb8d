// SPDX-License-Identifier: MIT

// Package shortest computes single-source shortest paths with
// extended-number distances.
//
// Unreachable vertices are not marked with a magic integer such as
// math.MaxInt64; their distance is Infinity, which compares above every
// finite distance and can never be confused with a real path length.
//
// Algorithms Provided
//
//   - Dijkstra(g, source, opts...) (Result[extended.NonNegative[T]], error)
//
//   - Weights: extended.NonNegative; an edge of weight Infinity is impassable.
//
//   - Frontier: a github.com/benbjohnson/immutable SortedMap keyed by
//     (distance, vertex), so a decrease-key is a Delete plus a Set.
//
//   - WithMaxDistance(bound): vertices farther than bound stay at Infinity.
//
//   - Complexity: O((V + E) log V) time, O(V) memory.
//
//   - BellmanFord(g, source) (Result[extended.Number[T]], error)
//
//   - Weights: extended.Number, negative values allowed; an edge of weight
//     PosInfinity is impassable.
//
//   - Unreachable vertices end at PosInfinity; vertices reachable through
//     a negative cycle end at NegInfinity and Result.NegativeCycle is set.
//
//   - A path whose sum overflows T also ends at an infinity but keeps its
//     predecessors; Result.BehindNegativeCycle tells the two cases apart.
//
//   - Complexity: O(V·E) time, O(V) memory.
//
// Undirected edges are traversed both ways. A negative undirected edge is
// therefore a negative cycle of its own.
//
// Error Conditions
//
//	ErrNilGraph      - g is nil.
//	ErrEmptyGraph    - g has no vertices.
//	ErrBadSource     - source is not a vertex of g.
//	ErrUnreachable   - PathTo asked for a vertex never reached.
//	ErrNegativeCycle - PathTo asked for a vertex behind a negative cycle.
package shortest

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'extnum'.
func tracer() tracing.Trace {
	return tracing.Select("extnum")
}
