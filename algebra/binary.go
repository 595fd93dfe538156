// File: binary.go
// Role: Two-operand set operators. All of them: fresh result graph, labels
//       copied from the first operand, deterministic i→j double loop with a
//       single edge-decision site per pair.

package algebra

import "github.com/katalvlaran/densegraph/core"

// fresh builds an empty result graph carrying g's directedness and labels.
func fresh[T any](g *core.Graph[T]) *core.Graph[T] {
	out := core.New[T](core.WithDirected(g.Directed()))
	out.AddNodesFrom(g.Labels())

	return out
}

// Union returns a new graph with an edge (i, j) wherever either operand has
// it. Weight comes from a when a has the edge, otherwise from b.
// Complexity: O(V²).
func Union[T any](a, b *core.Graph[T]) *core.Graph[T] {
	out := fresh(a)
	n := a.NodeCount()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case a.HasEdge(i, j):
				_ = out.AddEdge(i, j, a.Weight(i, j)) // indices are non-negative by loop bounds
			case b.HasEdge(i, j):
				_ = out.AddEdge(i, j, b.Weight(i, j)) // indices are non-negative by loop bounds
			}
		}
	}

	return out
}

// Intersection returns a new graph with an edge (i, j) wherever both
// operands have it, carrying a's weight.
// Complexity: O(V²).
func Intersection[T any](a, b *core.Graph[T]) *core.Graph[T] {
	out := fresh(a)
	n := a.NodeCount()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a.HasEdge(i, j) && b.HasEdge(i, j) {
				_ = out.AddEdge(i, j, a.Weight(i, j)) // indices are non-negative by loop bounds
			}
		}
	}

	return out
}

// Difference returns a new graph with an edge (i, j) wherever a has it and
// b does not, carrying a's weight.
// Complexity: O(V²).
func Difference[T any](a, b *core.Graph[T]) *core.Graph[T] {
	out := fresh(a)
	n := a.NodeCount()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a.HasEdge(i, j) && !b.HasEdge(i, j) {
				_ = out.AddEdge(i, j, a.Weight(i, j)) // indices are non-negative by loop bounds
			}
		}
	}

	return out
}

// SymmetricDifference returns a new graph with an edge (i, j) wherever
// exactly one operand has it, carrying that operand's weight.
// Complexity: O(V²).
func SymmetricDifference[T any](a, b *core.Graph[T]) *core.Graph[T] {
	out := fresh(a)
	n := a.NodeCount()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case a.HasEdge(i, j) && !b.HasEdge(i, j):
				_ = out.AddEdge(i, j, a.Weight(i, j)) // indices are non-negative by loop bounds
			case b.HasEdge(i, j) && !a.HasEdge(i, j):
				_ = out.AddEdge(i, j, b.Weight(i, j)) // indices are non-negative by loop bounds
			}
		}
	}

	return out
}
