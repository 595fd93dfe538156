// File: eulerian.go
// Role: The odd-degree counting rule. Not traversal-based.

package traverse

// IsEulerian applies the library's narrow degree-counting rule:
//
//   - zero odd-degree nodes        ⇒ Eulerian;
//   - one or two odd-degree nodes  ⇒ Eulerian iff each such node has degree
//     exactly 1;
//   - more than two                ⇒ not Eulerian.
//
// This is narrower than the general Eulerian-path criterion (which requires
// at most two odd-degree nodes and connectivity, with no degree-equals-1
// condition); the rule is preserved verbatim as part of the contract.
// Complexity: O(V²) via the degree scans.
func IsEulerian(g Topology) bool {
	n := g.NodeCount()

	// 1) Collect the degrees of all odd-degree nodes.
	odd := make([]int, 0, 2)
	var i, d int
	for i = 0; i < n; i++ {
		d = g.Degree(i)
		if d%2 == 1 {
			odd = append(odd, d)
		}
	}

	// 2) Apply the rule.
	switch {
	case len(odd) == 0:
		return true
	case len(odd) <= 2:
		for _, d = range odd {
			if d != 1 {
				return false
			}
		}

		return true
	default:
		return false
	}
}
