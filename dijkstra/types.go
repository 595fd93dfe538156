// Package dijkstra: the graph view the engine consumes and shared constants.
package dijkstra

import "math"

// Unreachable is the distance reported for nodes no path reaches. It equals
// the core NoEdge sentinel (+Inf), so dist < Unreachable means "reached".
var Unreachable = math.Inf(1)

// noParent marks a node whose predecessor pointer is unset.
const noParent = -1

// Graph is the index-based weighted view SingleSource needs.
// *core.Graph[T] satisfies it for any label type T.
type Graph interface {
	// NodeCount returns the number of nodes currently stored.
	NodeCount() int

	// HasEdge reports whether an edge from→to exists.
	HasEdge(from, to int) bool

	// Weight returns the stored weight of (from, to), or +Inf when absent.
	Weight(from, to int) float64
}
