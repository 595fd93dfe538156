// File: dijkstra.go
// Role: Dense O(V²) single-source Dijkstra with parent-pointer path
//       reconstruction, and the point-to-point query derived from it.

package dijkstra

// SingleSource computes shortest distances and reconstructed paths from
// source to every node of g.
//
// Returns parallel slices indexed by node index:
//
//   - dist[idx]:  minimum distance from source (Unreachable if no path);
//   - paths[idx]: node indices from source to idx in order (empty if
//     unreachable; [source] for the source itself).
//
// An out-of-range source yields all-Unreachable distances and all-empty
// paths rather than failing. Negative weights are not validated; results
// are unspecified in their presence.
// Complexity: O(V²) time, O(V) working space.
func SingleSource(g Graph, source int) (dist []float64, paths [][]int) {
	n := g.NodeCount()

	// 1) Initialize dist to +Inf everywhere, parents unset, nothing visited.
	dist = make([]float64, n)
	paths = make([][]int, n)
	parent := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		dist[i] = Unreachable
		parent[i] = noParent
	}

	// 2) Out-of-range source: well-defined empty result, no failure.
	if source < 0 || source >= n {
		return dist, paths
	}
	dist[source] = 0

	// 3) Main loop: n rounds of pick-minimum / finalize / relax.
	visited := make([]bool, n)
	var round, u, v int
	var candidate float64
	for round = 0; round < n; round++ {
		// Linear scan for the unvisited node with minimum distance.
		u = noParent
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if u == noParent || dist[v] < dist[u] {
				u = v
			}
		}
		if u == noParent {
			break // every node finalized
		}
		visited[u] = true

		// Relax every unvisited neighbor of u. An Unreachable dist[u]
		// cannot improve anything (Inf + w is never < any candidate), so
		// no explicit guard is needed.
		for v = 0; v < n; v++ {
			if visited[v] || !g.HasEdge(u, v) {
				continue
			}
			candidate = dist[u] + g.Weight(u, v)
			if candidate < dist[v] {
				dist[v] = candidate
				parent[v] = u
			}
		}
	}

	// 4) Path reconstruction: follow parent pointers back to source and
	// reverse into source-to-node order. Unreachable nodes keep empty paths.
	for i = 0; i < n; i++ {
		if dist[i] == Unreachable {
			continue
		}
		paths[i] = rebuild(parent, source, i)
	}

	return dist, paths
}

// Path answers a point-to-point query by running SingleSource(start) and
// reading the entry for end. An out-of-range end yields (Unreachable, nil).
// Complexity: O(V²).
func Path(g Graph, start, end int) (float64, []int) {
	dist, paths := SingleSource(g, start)
	if end < 0 || end >= len(dist) {
		return Unreachable, nil
	}

	return dist[end], paths[end]
}

// rebuild walks the parent chain from node back to source and returns the
// path in source-to-node order. The caller guarantees node was reached, so
// the chain terminates at source (the one node with dist 0 and no parent).
func rebuild(parent []int, source, node int) []int {
	// Collect node→source, then reverse in place.
	rev := make([]int, 0, 4)
	at := node
	for at != noParent {
		rev = append(rev, at)
		if at == source {
			break
		}
		at = parent[at]
	}

	var i, j int
	for i, j = 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
