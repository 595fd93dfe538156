// File: predicates.go
// Role: Structural predicates built on the shared reachability engine.
//       Each one runs the identical traversal with a different success
//       criterion; none of them error.

package traverse

// IsConnected reports whether every node is reachable from node index 0.
// A zero-node graph is vacuously connected.
//
// Note this is single-root reachability, not component counting: a
// disconnected graph whose every component contains node 0 cannot exist, so
// for undirected graphs the two coincide; the root choice is still fixed.
// Complexity: O(V²).
func IsConnected(g Topology) bool {
	if g.NodeCount() == 0 {
		return true
	}

	return allVisited(reach(g))
}

// IsStronglyConnected reports whether every node is reachable from node
// index 0 following edge orientation. Intended for directed graphs; on an
// undirected graph it coincides with IsConnected.
// Complexity: O(V²).
func IsStronglyConnected(g Topology) bool {
	if g.NodeCount() == 0 {
		return true
	}

	return allVisited(reach(g))
}

// IsCyclic reports, by this library's convention, that NOT every node is
// reachable from node index 0. This conflates "some node unreachable" with
// "cyclic" and is not a general cycle detector; the narrow semantics are
// part of the contract. A zero-node graph is not cyclic.
// Complexity: O(V²).
func IsCyclic(g Topology) bool {
	if g.NodeCount() == 0 {
		return false
	}

	return !allVisited(reach(g))
}

// IsTree runs the reachability traversal and additionally requires every
// discovery edge to exist per HasEdge. It shares its body with IsDAG; both
// are reachability tests, not the textbook tree/DAG properties (see the
// package documentation). A zero-node graph is vacuously a tree.
// Complexity: O(V²).
func IsTree(g Topology) bool {
	if g.NodeCount() == 0 {
		return true
	}
	visited, edgesOK := reachChecked(g)

	return edgesOK && allVisited(visited)
}

// IsDAG shares its body with IsTree; see there and the package
// documentation. A zero-node graph is vacuously a DAG.
// Complexity: O(V²).
func IsDAG(g Topology) bool {
	if g.NodeCount() == 0 {
		return true
	}
	visited, edgesOK := reachChecked(g)

	return edgesOK && allVisited(visited)
}

// bipartite coloring markers. uncolored must stay the zero-adjacent value
// so a fresh color slice reads as "no color assigned".
const (
	uncolored = -1
	colorA    = 0
	colorB    = 1
)

// IsBipartite 2-colors the graph during the shared traversal and reports
// whether no color clash occurred between adjacent nodes. Nodes unreachable
// from node 0 stay uncolored and cannot clash. A zero-node graph is
// vacuously bipartite.
// Complexity: O(V²).
func IsBipartite(g Topology) bool {
	n := g.NodeCount()
	if n == 0 {
		return true
	}

	color := make([]int, n)
	var i int
	for i = range color {
		color[i] = uncolored
	}

	// Same LIFO engine, with coloring folded into discovery. The clash
	// bookkeeping is a single boolean flag.
	color[0] = colorA
	stack := make([]int, 0, n)
	stack = append(stack, 0)
	visited := make([]bool, n)

	var v, nb int
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true

		for _, nb = range g.Neighbors(v) {
			if color[nb] == uncolored {
				color[nb] = colorB - color[v] // opposite of color[v]
			} else if color[nb] == color[v] {
				return false // adjacent nodes share a color
			}
			if !visited[nb] {
				stack = append(stack, nb)
			}
		}
	}

	return true
}
