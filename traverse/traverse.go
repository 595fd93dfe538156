// File: traverse.go
// Role: The single reachability exploration every structural predicate
//       reuses: LIFO stack seeded with node index 0.
// Determinism:
//   - Neighbors are pushed in the order the Topology returns them; the pop
//     order is depth-first. All predicates built on this engine are
//     order-insensitive, so the exact visitation order never matters.

package traverse

// reach explores the graph from node index 0 and returns the visited marker
// array. The caller guarantees g.NodeCount() > 0.
//
// Discipline per step: pop the most recently pushed index, mark it visited
// if not already, push every unvisited neighbor.
// Complexity: O(V²) on the dense model.
func reach(g Topology) []bool {
	n := g.NodeCount()
	visited := make([]bool, n)

	// Seed the exploration stack with node index 0.
	stack := make([]int, 0, n)
	stack = append(stack, 0)

	var v, nb int
	for len(stack) > 0 {
		// Pop the most recently pushed index (LIFO).
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true

		for _, nb = range g.Neighbors(v) {
			if !visited[nb] {
				stack = append(stack, nb)
			}
		}
	}

	return visited
}

// allVisited reports whether every marker is set.
func allVisited(visited []bool) bool {
	var ok bool
	for _, ok = range visited {
		if !ok {
			return false
		}
	}

	return true
}

// reachChecked runs the same exploration as reach but additionally
// re-verifies, for every newly discovered neighbor, that the edge used to
// discover it actually exists via HasEdge. It reports the visited markers
// and whether every such check passed.
//
// IsTree and IsDAG share this body verbatim; see the package documentation
// for why that narrow contract is preserved.
func reachChecked(g Topology) ([]bool, bool) {
	n := g.NodeCount()
	visited := make([]bool, n)
	edgesOK := true

	stack := make([]int, 0, n)
	stack = append(stack, 0)

	var v, nb int
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true

		for _, nb = range g.Neighbors(v) {
			if visited[nb] {
				continue
			}
			// Require the discovery edge to exist; a failure anywhere
			// aborts success but the exploration itself continues.
			if !g.HasEdge(v, nb) {
				edgesOK = false
			}
			stack = append(stack, nb)
		}
	}

	return visited, edgesOK
}
