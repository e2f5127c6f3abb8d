// SPDX-License-Identifier: MIT

package graph

import "fmt"

// AddVertex appends a new isolated vertex and returns its index.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adj = append(g.adj, nil)
	g.n++

	return g.n - 1
}

// AddEdge inserts an edge from → to with weight w and returns its ID.
// Undirected edges are recorded in both endpoints' adjacency.
//
// Returns ErrVertexOutOfRange or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(from, to int, w W) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) endpoint validation
	if err := g.checkVertex(from); err != nil {
		return -1, err
	}
	if err := g.checkVertex(to); err != nil {
		return -1, err
	}
	// 2) loop constraint
	if from == to && !g.allowLoops {
		return -1, fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	// 3) store and index
	id := len(g.edges)
	g.edges = append(g.edges, Edge[W]{ID: id, From: from, To: to, Weight: w})
	g.adj[from] = append(g.adj[from], id)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], id)
	}

	return id, nil
}

// HasEdge reports whether at least one edge leads from → to.
// Complexity: O(deg(from)).
func (g *Graph[W]) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.checkVertex(from) != nil || g.checkVertex(to) != nil {
		return false
	}
	for _, id := range g.adj[from] {
		if other := g.edges[id].otherEnd(from); other == to {
			return true
		}
	}

	return false
}

// Neighbors returns the edges leaving v in insertion order, oriented so
// that From == v. The slice is a copy and safe to keep.
// Complexity: O(deg(v)).
func (g *Graph[W]) Neighbors(v int) ([]Edge[W], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}
	out := make([]Edge[W], 0, len(g.adj[v]))
	for _, id := range g.adj[v] {
		e := g.edges[id]
		if e.From != v {
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}

	return out, nil
}

// Edges returns every edge in ID order, as inserted.
// Complexity: O(E).
func (g *Graph[W]) Edges() []Edge[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge[W], len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns n.
func (g *Graph[W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// EdgeCount returns the number of stored edges; an undirected edge counts once.
func (g *Graph[W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports whether edges are one-way.
func (g *Graph[W]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph[W]) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// checkVertex must be called with mu held.
func (g *Graph[W]) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}

	return nil
}

func (e Edge[W]) otherEnd(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}
