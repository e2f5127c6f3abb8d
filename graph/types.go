// SPDX-License-Identifier: MIT

// Package graph is a small, thread-safe, index-based weighted graph. It is
// the input type of the mst and shortest packages: vertices are the
// integers 0..n-1 and every edge carries a weight of the caller's choosing,
// typically an extended number.
//
// Errors:
//
//	ErrNegativeVertexCount - New was asked for fewer than zero vertices.
//	ErrVertexOutOfRange    - an endpoint is not in 0..n-1.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNegativeVertexCount indicates New was called with n < 0.
	ErrNegativeVertexCount = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Edge connects From to To with a Weight. ID is the insertion index.
//
// Edges returned by Neighbors are oriented away from the queried vertex, so
// an undirected edge stored as 2→0 is reported as 0→2 when asking for 0.
type Edge[W any] struct {
	ID     int
	From   int
	To     int
	Weight W
}

// Option configures a Graph before creation.
type Option func(*settings)

type settings struct {
	directed   bool
	allowLoops bool
}

// WithDirected makes every edge one-way.
func WithDirected() Option {
	return func(s *settings) { s.directed = true }
}

// WithLoops permits self-loops.
func WithLoops() Option {
	return func(s *settings) { s.allowLoops = true }
}

// Graph is an adjacency-list graph over vertices 0..n-1.
// Parallel edges are allowed. mu guards every field below it.
type Graph[W any] struct {
	mu sync.RWMutex

	settings
	n     int
	edges []Edge[W]
	adj   [][]int // vertex → indices into edges
}

// New creates a graph with n isolated vertices.
// By default the graph is undirected and rejects self-loops.
// Complexity: O(n).
func New[W any](n int, opts ...Option) (*Graph[W], error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	g := &Graph[W]{n: n, adj: make([][]int, n)}
	for _, opt := range opts {
		opt(&g.settings)
	}

	return g, nil
}
