// SPDX-License-Identifier: MIT

// Package extnum provides integers extended with infinities, and graph
// algorithms that use them in place of sentinel values.
//
// What is extnum?
//
//	A small library that brings together:
//		• numeric:  named integer types with checked arithmetic and bounds
//		• extended: Number (-inf, finite, +inf) and NonNegative (finite, inf)
//		• graph:    an index-based, thread-safe weighted graph
//		• mst:      Prim and Kruskal over NonNegative weights
//		• shortest: Dijkstra and Bellman–Ford over extended distances
//		• cmd/extnum: a command-line front end for the algorithms
//
// Why extended numbers?
//
//   - "No edge yet" is Infinity, not math.MaxUint32, so every real weight
//     stays usable.
//   - Overflowing sums become an infinity instead of wrapping around.
//   - Meaningless results (inf - inf, 0 * inf, x / 0) panic with a typed
//     *extended.ArithmeticError; extended.Try turns them into errors.
//
// Quick example:
//
//	a := extended.FromInt32(math.MaxInt32)
//	b := a.Add(extended.FromInt32(1))  // +infinity
//	c := b.Sub(extended.FromInt32(7))  // +infinity
//	_, err := extended.Try(func() extended.Int32 { return b.Sub(c) })
//	// err: extended: indeterminate form: inf - inf
//
//	go get github.com/katalvlaran/extnum
package extnum
