// SPDX-License-Identifier: MIT

package shortest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/graph"
	"github.com/katalvlaran/extnum/numeric"
)

// Sentinel errors returned by the shortest-path routines.
var (
	// ErrNilGraph indicates a nil *graph.Graph.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = errors.New("shortest: graph has no vertices")

	// ErrBadSource indicates the source is not a vertex of the graph.
	ErrBadSource = errors.New("shortest: source vertex out of range")

	// ErrUnreachable indicates no path leads to the requested vertex.
	ErrUnreachable = errors.New("shortest: vertex unreachable")

	// ErrNegativeCycle indicates the requested vertex has no shortest path
	// because a negative cycle lies on the way.
	ErrNegativeCycle = errors.New("shortest: negative cycle")
)

// NoPredecessor marks the source and every vertex never reached.
const NoPredecessor = -1

// Distance is satisfied by extended.Number and extended.NonNegative.
type Distance interface {
	fmt.Stringer
	IsPosInf() bool
	IsNegInf() bool
}

// Result holds the distances and the shortest-path tree from Source.
type Result[D Distance] struct {
	Source int
	Dist   []D   // Dist[v], PosInfinity when unreachable or too long for the type
	Prev   []int // predecessor of v on a shortest path, or NoPredecessor

	// NegativeCycle is set by BellmanFord when a negative cycle is reachable
	// from Source.
	NegativeCycle bool

	cycle []bool // BellmanFord only: v lies on or behind a negative cycle
}

func newResult[D Distance](n, source int, unreached D) Result[D] {
	r := Result[D]{
		Source: source,
		Dist:   make([]D, n),
		Prev:   make([]int, n),
	}
	for v := range r.Dist {
		r.Dist[v] = unreached
		r.Prev[v] = NoPredecessor
	}

	return r
}

// BehindNegativeCycle reports whether v has no shortest path because a
// negative cycle lies on or before it. Such a v has Dist NegInfinity, but a
// NegInfinity distance alone may also come from an overflowed sum.
func (r Result[D]) BehindNegativeCycle(v int) bool {
	return v >= 0 && v < len(r.cycle) && r.cycle[v]
}

// PathTo returns the vertices of a shortest path from Source to v.
//
// Returns graph.ErrVertexOutOfRange for a bad v, ErrNegativeCycle when
// BehindNegativeCycle(v) and ErrUnreachable when v was never reached. A
// vertex whose distance overflowed to an infinity still has its path.
func (r Result[D]) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", graph.ErrVertexOutOfRange, v, len(r.Dist))
	}
	switch {
	case r.BehindNegativeCycle(v):
		return nil, fmt.Errorf("%w: on the way from %d to %d", ErrNegativeCycle, r.Source, v)
	case v != r.Source && r.Prev[v] == NoPredecessor:
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, v, r.Source)
	}
	var path []int
	for u := v; u != NoPredecessor; u = r.Prev[u] {
		path = append(path, u)
		if len(path) > len(r.Dist) {
			return nil, fmt.Errorf("%w: predecessor loop at %d", ErrNegativeCycle, u)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Options configures Dijkstra.
type Options[T numeric.Unsigned[T]] struct {
	// MaxDistance caps exploration; Infinity means no cap.
	MaxDistance extended.NonNegative[T]
}

// Option modifies Options.
type Option[T numeric.Unsigned[T]] func(*Options[T])

// WithMaxDistance leaves every vertex farther than bound at Infinity.
func WithMaxDistance[T numeric.Unsigned[T]](bound extended.NonNegative[T]) Option[T] {
	return func(o *Options[T]) { o.MaxDistance = bound }
}

// DefaultOptions returns options without a distance cap.
func DefaultOptions[T numeric.Unsigned[T]]() Options[T] {
	return Options[T]{MaxDistance: extended.Inf[T]()}
}

// validate applies the checks shared by both algorithms and returns |V|.
func validate[W any](g *graph.Graph[W], source int) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return 0, ErrEmptyGraph
	}
	if source < 0 || source >= n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrBadSource, source, n)
	}

	return n, nil
}
