// Package densegraph is an in-memory graph library backed by a dense,
// row-ragged adjacency matrix — from core primitives to structural
// predicates, shortest paths and graph algebra.
//
// 🚀 What is densegraph?
//
//	A small, single-threaded library that brings together:
//		• Core primitives: generic node labels, index-addressed edges, a
//		  ragged weight matrix with +Inf as the "no edge" sentinel
//		• Traversals: stack-based reachability and the predicates built on it
//		  (connectivity, bipartiteness, tree/DAG/cycle checks, Eulerian rule)
//		• Shortest paths: dense O(V²) single-source Dijkstra with path
//		  reconstruction
//		• Algebra: union, intersection, difference, symmetric difference,
//		  complement, reverse, transitive closure, induced subgraphs
//		• Export: deterministic DOT-like textual serialization
//
// ✨ Why choose densegraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable memory – O(V²) dense storage regardless of sparsity
//   - Pure Go – no cgo, no hidden deps
//   - Value semantics – algebra operators always build fresh graphs
//
// Everything is organized under five subpackages:
//
//	core/     — generic Graph type, node store, ragged adjacency matrix
//	traverse/ — reachability engine and structural predicates
//	dijkstra/ — dense single-source shortest paths
//	algebra/  — set-style operators producing new graphs
//	dot/      — DOT-like textual export
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	represents a square with four nodes and four edges.
//
// Graph instances are exclusively owned by a single caller context; no
// operation is safe for concurrent use on one instance without external
// synchronization.
//
//	go get github.com/katalvlaran/densegraph
package densegraph
