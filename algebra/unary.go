// File: unary.go
// Role: One-operand operators: Complement, Reverse, TransitiveClosure,
//       Subgraph. Same discipline as binary.go: fresh result, deterministic
//       index loops, operands untouched.

package algebra

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// Complement returns a new graph with an edge (i, j) for every distinct pair
// the source has no edge between. Result edges carry unit weight.
// Complexity: O(V²).
func Complement[T any](g *core.Graph[T]) *core.Graph[T] {
	out := fresh(g)
	n := g.NodeCount()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && !g.HasEdge(i, j) {
				_ = out.AddEdge(i, j, core.DefaultWeight) // indices are non-negative by loop bounds
			}
		}
	}

	return out
}

// Reverse returns a new graph where every source edge (i, j) becomes (j, i),
// weight preserved. Meaningful for directed graphs; on undirected graphs the
// mirror invariant makes it a copy.
// Complexity: O(V²).
func Reverse[T any](g *core.Graph[T]) *core.Graph[T] {
	out := fresh(g)
	n := g.NodeCount()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.HasEdge(i, j) {
				_ = out.AddEdge(j, i, g.Weight(i, j)) // indices are non-negative by loop bounds
			}
		}
	}

	return out
}

// TransitiveClosure returns the reachability closure of g: an edge (i, j)
// exists in the result iff j is reachable from i via any path. The closure
// is seeded with the existing edges at unit weight and expanded
// Floyd–Warshall style: for every intermediate k, (i, j) is added whenever
// (i, k) and (k, j) both hold. Result edges carry unit weight regardless of
// source weights — this is unweighted reachability, not a distance closure.
// Complexity: O(V³).
func TransitiveClosure[T any](g *core.Graph[T]) *core.Graph[T] {
	out := fresh(g)
	n := g.NodeCount()

	// 1) Seed with existing edges, degraded to unit weight.
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.HasEdge(i, j) {
				_ = out.AddEdge(i, j, core.DefaultWeight) // indices are non-negative by loop bounds
			}
		}
	}

	// 2) Expand through every intermediate k.
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if !out.HasEdge(i, k) {
				continue
			}
			for j = 0; j < n; j++ {
				if out.HasEdge(k, j) {
					_ = out.AddEdge(i, j, core.DefaultWeight) // indices are non-negative by loop bounds
				}
			}
		}
	}

	return out
}

// Subgraph returns the subgraph induced by the given source indices, in the
// given order: node p of the result carries the label of source node idxs[p],
// and edges mirror the induced adjacency between selected indices, renumbered
// to the new zero-based positions. Weights are preserved.
//
// Returns core.ErrIndexOutOfRange when any index is outside the source's
// node range.
// Complexity: O(len(idxs)²).
func Subgraph[T any](g *core.Graph[T], idxs []int) (*core.Graph[T], error) {
	out := core.New[T](core.WithDirected(g.Directed()))

	// 1) Copy the selected labels in the given order.
	var idx int
	for _, idx = range idxs {
		label, ok := g.Node(idx)
		if !ok {
			return nil, fmt.Errorf("Subgraph: index %d: %w", idx, core.ErrIndexOutOfRange)
		}
		out.AddNode(label)
	}

	// 2) Mirror induced adjacency, renumbered to result positions.
	var pi, pj, si, sj int
	for pi, si = range idxs {
		for pj, sj = range idxs {
			if g.HasEdge(si, sj) {
				_ = out.AddEdge(pi, pj, g.Weight(si, sj)) // positions are non-negative by construction
			}
		}
	}

	return out, nil
}
