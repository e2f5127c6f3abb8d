// SPDX-License-Identifier: MIT

package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/graph"
	"github.com/katalvlaran/extnum/numeric"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates a nil *graph.Graph.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDirectedGraph indicates the graph is directed; MST needs undirected edges.
	ErrDirectedGraph = errors.New("mst: MST requires an undirected graph")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrBadRoot indicates the root is not a vertex of the graph.
	ErrBadRoot = errors.New("mst: root vertex out of range")

	// ErrDisconnected indicates some vertex cannot be reached from the root.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates Compute was asked for an unknown algorithm.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// NoParent marks the root and every vertex not reached by the tree.
const NoParent = -1

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// Tree is a spanning tree oriented away from Root.
type Tree[T numeric.Unsigned[T]] struct {
	Root   int
	Parent []int                    // Parent[v], NoParent for Root and unreached vertices
	Key    []extended.NonNegative[T] // weight of the edge Parent[v]–v; Finite(0) at Root
	Edges  []graph.Edge[extended.NonNegative[T]]
	Total  extended.NonNegative[T]
}

// newTree returns a tree with every vertex unreached.
func newTree[T numeric.Unsigned[T]](n, root int) Tree[T] {
	t := Tree[T]{
		Root:   root,
		Parent: make([]int, n),
		Key:    make([]extended.NonNegative[T], n),
	}
	for v := range t.Parent {
		t.Parent[v] = NoParent
		t.Key[v] = extended.Inf[T]()
	}
	var zero T
	t.Key[root] = extended.NewNonNegative(zero.Zero())

	return t
}

// Spanning reports whether every vertex is reached. An infinite Total does
// not imply !Spanning: the sum may overflow T alone.
func (t Tree[T]) Spanning() bool {
	for _, k := range t.Key {
		if k.IsInf() {
			return false
		}
	}

	return len(t.Key) > 0
}

// finish sums the keys and reports ErrDisconnected when a key is infinite.
// Total saturates at Infinity on overflow; that alone is not an error.
func (t *Tree[T]) finish() error {
	var zero T
	t.Total = extended.NewNonNegative(zero.Zero())
	unreached := 0
	for _, k := range t.Key {
		t.Total = t.Total.Add(k)
		if k.IsInf() {
			unreached++
		}
	}
	if unreached > 0 {
		return fmt.Errorf("%w: %d of %d vertices unreachable from %d", ErrDisconnected, unreached, len(t.Key), t.Root)
	}

	return nil
}

// Options configures Compute.
type Options struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is the start vertex for Prim and the orientation root for Kruskal.
	Root int
}

// Option modifies Options.
type Option func(*Options)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the root vertex.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Prim rooted at vertex 0.
func DefaultOptions() Options {
	return Options{Method: MethodPrim, Root: 0}
}

// Compute runs the algorithm selected by opts.
func Compute[T numeric.Unsigned[T]](g *graph.Graph[extended.NonNegative[T]], opts ...Option) (Tree[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodPrim:
		return Prim(g, o.Root)
	case MethodKruskal:
		return kruskal(g, o.Root)
	default:
		return Tree[T]{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validate applies the checks shared by both algorithms and returns |V|.
func validate[T numeric.Unsigned[T]](g *graph.Graph[extended.NonNegative[T]], root int) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if g.Directed() {
		return 0, ErrDirectedGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return 0, ErrEmptyGraph
	}
	if root < 0 || root >= n {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrBadRoot, root, n)
	}

	return n, nil
}
