// File: methods_adjacent.go
// Role: Adjacency queries over node-indexed cells: Neighbors, Predecessors,
//       Successors, EdgesFrom/EdgesTo, Degree/InDegree/OutDegree/Degrees.
// Determinism:
//   - All scans iterate candidate indices 0..NodeCount() in ascending order,
//     so every returned slice is in stable ascending index order.
//   - Phantom matrix cells beyond the node count are never visited.

package core

// Neighbors returns the adjacent node indices of idx.
//
// For undirected graphs these are the nodes i with HasEdge(i, idx); the
// mirror invariant makes the direction of the probe immaterial. For directed
// graphs Neighbors means the successors of idx (out-neighbors), which is the
// orientation every traversal in this library walks.
// Complexity: O(V).
func (g *Graph[T]) Neighbors(idx int) []int {
	if g.directed {
		return g.Successors(idx)
	}

	n := len(g.nodes)
	out := make([]int, 0, n)
	var i int
	for i = 0; i < n; i++ {
		if g.HasEdge(i, idx) {
			out = append(out, i)
		}
	}

	return out
}

// Predecessors returns the node indices with an edge INTO idx.
// On undirected graphs this coincides with Neighbors.
// Complexity: O(V).
func (g *Graph[T]) Predecessors(idx int) []int {
	n := len(g.nodes)
	out := make([]int, 0, n)
	var i int
	for i = 0; i < n; i++ {
		if g.HasEdge(i, idx) {
			out = append(out, i)
		}
	}

	return out
}

// Successors returns the node indices with an edge OUT OF idx.
// On undirected graphs this coincides with Neighbors.
// Complexity: O(V).
func (g *Graph[T]) Successors(idx int) []int {
	n := len(g.nodes)
	out := make([]int, 0, n)
	var j int
	for j = 0; j < n; j++ {
		if g.HasEdge(idx, j) {
			out = append(out, j)
		}
	}

	return out
}

// EdgesFrom materializes the outgoing edges of idx as Edge values.
// Complexity: O(V).
func (g *Graph[T]) EdgesFrom(idx int) []Edge {
	n := len(g.nodes)
	out := make([]Edge, 0, n)
	var j int
	for j = 0; j < n; j++ {
		if g.HasEdge(idx, j) {
			out = append(out, Edge{From: idx, To: j, Weight: g.adj.at(idx, j)})
		}
	}

	return out
}

// EdgesTo materializes the incoming edges of idx as Edge values.
// Complexity: O(V).
func (g *Graph[T]) EdgesTo(idx int) []Edge {
	n := len(g.nodes)
	out := make([]Edge, 0, n)
	var i int
	for i = 0; i < n; i++ {
		if g.HasEdge(i, idx) {
			out = append(out, Edge{From: i, To: idx, Weight: g.adj.at(i, idx)})
		}
	}

	return out
}

// InDegree counts the edges into idx.
// Complexity: O(V).
func (g *Graph[T]) InDegree(idx int) int {
	n := len(g.nodes)
	deg := 0
	var i int
	for i = 0; i < n; i++ {
		if g.HasEdge(i, idx) {
			deg++
		}
	}

	return deg
}

// OutDegree counts the edges out of idx.
// Complexity: O(V).
func (g *Graph[T]) OutDegree(idx int) int {
	n := len(g.nodes)
	deg := 0
	var j int
	for j = 0; j < n; j++ {
		if g.HasEdge(idx, j) {
			deg++
		}
	}

	return deg
}

// Degree counts the edges incident to idx: incoming plus outgoing for
// directed graphs, each incident edge once for undirected ones.
// Complexity: O(V).
func (g *Graph[T]) Degree(idx int) int {
	if g.directed {
		return g.InDegree(idx) + g.OutDegree(idx)
	}

	return g.OutDegree(idx)
}

// Degrees returns the degree of every node, indexed by node index.
// Complexity: O(V²).
func (g *Graph[T]) Degrees() []int {
	out := make([]int, len(g.nodes))
	var i int
	for i = range out {
		out[i] = g.Degree(i)
	}

	return out
}
