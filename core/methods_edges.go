// File: methods_edges.go
// Role: Edge lifecycle & cell-level queries: AddEdge/AddEdgesFrom/
//       AddWeightedEdgesFrom/RemoveEdge/HasEdge/Weight/EdgeCount.
// Determinism:
//   - Undirected writes mirror into the transposed cell within the same call.
//   - HasEdge bounds-checks against the matrix's allocated shape, not the
//     node count; out-of-shape reads are false, never an error.

package core

import "fmt"

// AddEdge sets the weight of the (from, to) cell, growing matrix rows as
// needed to cover the higher of the two indices. Undirected graphs mirror
// the write into (to, from) atomically within the same call.
//
// Indices are NOT validated against the node count: indices beyond it are
// silently accepted into the matrix, creating phantom edges unreachable
// through node-indexed iteration. Avoiding that is a caller precondition.
// Negative indices fail fast with ErrIndexOutOfRange.
// Complexity: O(max(from,to)) worst case for growth.
func (g *Graph[T]) AddEdge(from, to int, weight float64) error {
	// 1) Fail fast on negative indices; growth math is undefined below zero.
	if from < 0 || to < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrIndexOutOfRange)
	}

	// 2) Store the weight, mirroring for undirected graphs.
	g.adj.set(from, to, weight)
	if !g.directed {
		g.adj.set(to, from, weight)
	}

	return nil
}

// AddEdgesFrom applies AddEdge to every (from, to) pair with the shared
// weight. On the first failure the pairs applied so far remain in place.
// Complexity: O(len(pairs)) cell writes plus growth.
func (g *Graph[T]) AddEdgesFrom(pairs [][2]int, weight float64) error {
	var p [2]int
	for _, p = range pairs {
		if err := g.AddEdge(p[0], p[1], weight); err != nil {
			return fmt.Errorf("AddEdgesFrom: %w", err)
		}
	}

	return nil
}

// AddWeightedEdgesFrom applies AddEdge once per entry with that entry's own
// weight.
// Complexity: O(len(edges)) cell writes plus growth.
func (g *Graph[T]) AddWeightedEdgesFrom(edges []Edge) error {
	var e Edge
	for _, e = range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("AddWeightedEdgesFrom: %w", err)
		}
	}

	return nil
}

// RemoveEdge resets the (from, to) cell back to the sentinel, mirrored for
// undirected graphs. Cells outside the allocated shape already read as
// NoEdge, so removal never grows the matrix. Negative indices fail fast.
// Complexity: O(1).
func (g *Graph[T]) RemoveEdge(from, to int) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", from, to, ErrIndexOutOfRange)
	}

	g.adj.clear(from, to)
	if !g.directed {
		g.adj.clear(to, from)
	}

	return nil
}

// HasEdge reports whether an edge from→to exists: the stored weight is
// strictly less than the NoEdge sentinel. The check is bounds-checked
// against the matrix's actual allocated shape (not the node count) and
// returns false on out-of-range rather than failing.
// Complexity: O(1).
func (g *Graph[T]) HasEdge(from, to int) bool {
	return g.adj.at(from, to) < NoEdge
}

// Weight returns the stored weight of the (from, to) cell, or NoEdge when
// the cell is absent or out of the allocated shape.
// Complexity: O(1).
func (g *Graph[T]) Weight(from, to int) float64 {
	return g.adj.at(from, to)
}

// EdgeCount counts edges between node-indexed pairs: every ordered pair for
// directed graphs, each unordered pair once for undirected ones. Phantom
// cells beyond the node count are not visited.
// Complexity: O(V²).
func (g *Graph[T]) EdgeCount() int {
	n := len(g.nodes)
	count := 0
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !g.directed && j < i {
				continue // unordered pair already counted as (j, i)
			}
			if g.HasEdge(i, j) {
				count++
			}
		}
	}

	return count
}
