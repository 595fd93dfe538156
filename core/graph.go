// File: graph.go
// Role: Graph construction and node-store lifecycle: New/NewDirected,
//       AddNode/AddNodesFrom, RemoveNode/RemoveNodesFrom, bounds-checked
//       label access, counters and snapshots.
// Determinism:
//   - Node indices are assigned in insertion order, starting at zero.
//   - RemoveNode shifts every later index down by one and does NOT compact
//     the matrix rows/columns of the removed index.

package core

import "fmt"

// Graph is the core in-memory graph data structure: an ordered node store of
// generic labels plus a row-ragged dense adjacency matrix of weights.
//
// Directedness is fixed at construction. Undirected graphs keep the mirror
// invariant weight(i,j) == weight(j,i) across every mutation; directed graphs
// treat (i,j) and (j,i) as independent cells.
type Graph[T any] struct {
	directed bool      // single-directional edge writes when true
	nodes    []T       // node index → label, insertion order
	adj      adjacency // ragged (from, to) → weight store
}

// New creates an empty graph. By default the graph is undirected; pass
// WithDirected(true) (or use NewDirected) for single-directional edges.
// Complexity: O(len(opts)).
func New[T any](opts ...GraphOption) *Graph[T] {
	var cfg config
	var opt GraphOption
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Graph[T]{directed: cfg.directed}
}

// NewDirected creates an empty directed graph. It is shorthand for
// New[T](WithDirected(true)) and keeps option application centralized there.
// Complexity: O(len(opts)).
func NewDirected[T any](opts ...GraphOption) *Graph[T] {
	directed := make([]GraphOption, 0, len(opts)+1)
	directed = append(directed, WithDirected(true))
	directed = append(directed, opts...)

	return New[T](directed...)
}

// Directed reports whether edge writes are single-directional.
// Complexity: O(1).
func (g *Graph[T]) Directed() bool { return g.directed }

// AddNode appends label to the node store. The new node's index equals the
// node count before the call.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(label T) {
	g.nodes = append(g.nodes, label)
}

// AddNodesFrom appends every label in order; equivalent to repeated AddNode.
// Complexity: O(len(labels)) amortized.
func (g *Graph[T]) AddNodesFrom(labels []T) {
	g.nodes = append(g.nodes, labels...)
}

// RemoveNode removes the node at idx and returns its label.
// Every later index shifts down by one. The adjacency matrix is NOT
// compacted: rows and columns of the removed index stay in place, so callers
// relying on matrix shape after removal must treat it as a separate concern.
//
// Returns ErrIndexOutOfRange when idx is outside [0, NodeCount()).
// Complexity: O(V) for the shift.
func (g *Graph[T]) RemoveNode(idx int) (T, error) {
	if idx < 0 || idx >= len(g.nodes) {
		var zero T

		return zero, fmt.Errorf("RemoveNode(%d): %w", idx, ErrIndexOutOfRange)
	}

	label := g.nodes[idx]
	g.nodes = append(g.nodes[:idx], g.nodes[idx+1:]...)

	return label, nil
}

// RemoveNodesFrom applies RemoveNode once per index, in the given order, and
// returns the removed labels in that order.
//
// Because indices shift after each removal, the meaning of later entries
// depends on earlier ones; accounting for the shift is a caller precondition,
// not a library-enforced invariant. On the first out-of-range index the
// labels removed so far are returned together with the error.
// Complexity: O(len(idxs) · V).
func (g *Graph[T]) RemoveNodesFrom(idxs []int) ([]T, error) {
	removed := make([]T, 0, len(idxs))
	var idx int
	for _, idx = range idxs {
		label, err := g.RemoveNode(idx)
		if err != nil {
			return removed, fmt.Errorf("RemoveNodesFrom: %w", err)
		}
		removed = append(removed, label)
	}

	return removed, nil
}

// Node returns the label at idx and whether idx is in range. This is the
// only bounds-checked read path that reports absence instead of failing.
// Complexity: O(1).
func (g *Graph[T]) Node(idx int) (T, bool) {
	if idx < 0 || idx >= len(g.nodes) {
		var zero T

		return zero, false
	}

	return g.nodes[idx], true
}

// NodeCount returns the number of nodes currently stored.
// Complexity: O(1).
func (g *Graph[T]) NodeCount() int { return len(g.nodes) }

// Labels returns a snapshot copy of all node labels in index order.
// Complexity: O(V).
func (g *Graph[T]) Labels() []T {
	out := make([]T, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// HasNode reports whether any node carries the given label. It is a free
// function rather than a method because it is the one operation requiring
// equality on the label type.
// Complexity: O(V).
func HasNode[T comparable](g *Graph[T], label T) bool {
	var l T
	for _, l = range g.nodes {
		if l == label {
			return true
		}
	}

	return false
}
