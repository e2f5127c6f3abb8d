// SPDX-License-Identifier: MIT

package shortest

import (
	"github.com/benbjohnson/immutable"

	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/graph"
	"github.com/katalvlaran/extnum/numeric"
)

// Dijkstra computes shortest distances from source over non-negative
// extended weights.
//
// Steps:
//  1. Validate the graph and source; apply options.
//  2. Dist[v] = Infinity for all v, Dist[source] = Finite(0); the frontier
//     holds (0, source).
//  3. While the frontier is not empty:
//     a. Take its first entry (d, u).
//     b. Settle u.
//     c. For every edge u→v with v unsettled, if d + w < Dist[v] and
//     d + w does not exceed MaxDistance, move v's frontier entry to
//     (d + w, v) and set Prev[v] = u.
//
// Entries beyond MaxDistance never enter the frontier, so such vertices
// keep Dist Infinity.
//
// Sums that overflow T are promoted to Infinity by extended.NonNegative.Add,
// so a path too long for T is treated like no path at all.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Dijkstra[T numeric.Unsigned[T]](g *graph.Graph[extended.NonNegative[T]], source int, opts ...Option[T]) (Result[extended.NonNegative[T]], error) {
	// 1. Validate input.
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	n, err := validate(g, source)
	if err != nil {
		return Result[extended.NonNegative[T]]{}, err
	}

	// 2. Initialize.
	var zero T
	res := newResult(n, source, extended.Inf[T]())
	res.Dist[source] = extended.NewNonNegative(zero.Zero())
	settled := make([]bool, n)
	reached := 0
	frontier := immutable.NewSortedMap[entry[T], struct{}](entryOrder[T]{})
	frontier = frontier.Set(entry[T]{res.Dist[source], source}, struct{}{})

	// 3. Main loop.
	for frontier.Len() > 0 {
		// 3a. Closest unsettled vertex.
		first, _, _ := frontier.Iterator().Next()
		frontier = frontier.Delete(first)
		u, d := first.vertex, first.dist

		// 3b. Settle u.
		settled[u] = true
		reached++
		tracer().Debugf("dijkstra: settle %d at %v", u, d)

		// 3c. Relax.
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return Result[extended.NonNegative[T]]{}, err
		}
		for _, e := range nbrs {
			v := e.To
			if settled[v] {
				continue
			}
			alt := d.Add(e.Weight)
			if !alt.Less(res.Dist[v]) || cfg.MaxDistance.Less(alt) {
				continue
			}
			if !res.Dist[v].IsInf() {
				frontier = frontier.Delete(entry[T]{res.Dist[v], v})
			}
			res.Dist[v] = alt
			res.Prev[v] = u
			frontier = frontier.Set(entry[T]{alt, v}, struct{}{})
		}
	}
	tracer().Infof("dijkstra: source %d, reached %d of %d vertices", source, reached, n)

	return res, nil
}

// entry is a frontier key. Distinct vertices never collide, so the map
// holds at most one entry per vertex.
type entry[T numeric.Unsigned[T]] struct {
	dist   extended.NonNegative[T]
	vertex int
}

// entryOrder sorts entries by distance, then vertex.
type entryOrder[T numeric.Unsigned[T]] struct{}

// Compare implements immutable.Comparer.
func (entryOrder[T]) Compare(a, b entry[T]) int {
	if c := a.dist.Compare(b.dist); c != 0 {
		return c
	}
	switch {
	case a.vertex < b.vertex:
		return -1
	case a.vertex > b.vertex:
		return 1
	}

	return 0
}
