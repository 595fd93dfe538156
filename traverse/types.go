// Package traverse: the Topology view consumed by the reachability engine
// and the predicates built on it.
package traverse

// Topology is the index-based read-only view the traversal engine needs.
// *core.Graph[T] satisfies it for any label type T.
//
// Neighbors must return the nodes adjacent to idx in the orientation the
// graph walks: all adjacent nodes for undirected graphs, successors for
// directed ones. Degree must count incident edges once for undirected
// graphs and in+out for directed ones.
type Topology interface {
	// NodeCount returns the number of nodes currently stored.
	NodeCount() int

	// Neighbors returns the adjacent node indices of idx.
	Neighbors(idx int) []int

	// HasEdge reports whether an edge from→to exists.
	HasEdge(from, to int) bool

	// Degree counts the edges incident to idx.
	Degree(idx int) int
}
