// SPDX-License-Identifier: MIT

package shortest

import (
	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/graph"
	"github.com/katalvlaran/extnum/numeric"
)

// BellmanFord computes shortest distances from source over signed extended
// weights.
//
// Steps:
//  1. Validate the graph and source.
//  2. Dist[v] = PosInfinity for all v, Dist[source] = Finite(0).
//  3. Repeat |V|-1 times: relax every arc u→v leaving a reached vertex;
//     stop early once a round changes nothing.
//  4. Every arc that still relaxes leads into a negative cycle: its head
//     is marked and becomes NegInfinity.
//  5. Spread the mark and NegInfinity to everything reachable from such a
//     head.
//
// A finite path whose sum does not fit T ends at PosInfinity or
// NegInfinity through extended.Number.Add, yet keeps its predecessor, so
// PathTo still returns it. Only the vertices marked in steps 4 and 5 report
// ErrNegativeCycle; use BehindNegativeCycle to tell them apart.
//
// Arcs of weight PosInfinity are skipped. An arc leaving a vertex whose
// distance overflowed to PosInfinity passes reachability on but no
// distance, so no sum is ever indeterminate.
//
// Complexity: O(V·E) time, O(V + E) memory.
func BellmanFord[T numeric.Signed[T]](g *graph.Graph[extended.Number[T]], source int) (Result[extended.Number[T]], error) {
	// 1. Validate input.
	n, err := validate(g, source)
	if err != nil {
		return Result[extended.Number[T]]{}, err
	}

	// 2. Initialize.
	var zero T
	res := newResult(n, source, extended.PosInf[T]())
	res.Dist[source] = extended.New(zero.Zero())
	res.cycle = make([]bool, n)
	reached := make([]bool, n)
	reached[source] = true
	all := arcs(g)

	// 3. Relaxation rounds.
	for round := 1; round < n; round++ {
		changed := false
		for _, a := range all {
			if relax(&res, reached, a) {
				changed = true
			}
		}
		tracer().Debugf("bellman-ford: round %d, changed=%v", round, changed)
		if !changed {
			break
		}
	}

	// 4. Detect arcs into negative cycles.
	var queue []int
	for _, a := range all {
		if res.cycle[a.To] || !relax(&res, reached, a) {
			continue
		}
		res.cycle[a.To] = true
		res.Dist[a.To] = extended.NegInf[T]()
		queue = append(queue, a.To)
	}

	res.NegativeCycle = len(queue) > 0

	// 5. Propagate the mark.
	out := make([][]graph.Edge[extended.Number[T]], n)
	for _, a := range all {
		if !a.Weight.IsPosInf() {
			out[a.From] = append(out[a.From], a)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range out[u] {
			if res.cycle[a.To] {
				continue
			}
			res.cycle[a.To] = true
			res.Dist[a.To] = extended.NegInf[T]()
			res.Prev[a.To] = u
			queue = append(queue, a.To)
		}
	}
	tracer().Infof("bellman-ford: source %d, negative cycle=%v", source, res.NegativeCycle)

	return res, nil
}

// relax applies a single relaxation along a and reports whether Dist, Prev
// or reached changed. The first arc into a vertex always reaches it, even
// when the sum overflowed to PosInfinity.
func relax[T numeric.Signed[T]](res *Result[extended.Number[T]], reached []bool, a graph.Edge[extended.Number[T]]) bool {
	if !reached[a.From] || a.Weight.IsPosInf() {
		return false
	}
	du := res.Dist[a.From]
	if du.IsPosInf() {
		// overflowed: pass reachability on, there is no distance to add
		if reached[a.To] {
			return false
		}
		reached[a.To] = true
		res.Prev[a.To] = a.From
		return true
	}
	alt := du.Add(a.Weight)
	if reached[a.To] && !alt.Less(res.Dist[a.To]) {
		return false
	}
	reached[a.To] = true
	res.Dist[a.To] = alt
	res.Prev[a.To] = a.From

	return true
}

// arcs lists the edges of g as one-way arcs; undirected edges appear in
// both directions.
func arcs[W any](g *graph.Graph[W]) []graph.Edge[W] {
	edges := g.Edges()
	if g.Directed() {
		return edges
	}
	out := make([]graph.Edge[W], 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e)
		if e.From != e.To {
			out = append(out, graph.Edge[W]{ID: e.ID, From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return out
}
