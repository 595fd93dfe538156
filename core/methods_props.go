// File: methods_props.go
// Role: Whole-matrix property queries: IsWeighted, IsComplete.

package core

// IsWeighted reports whether any stored edge carries a weight other than
// DefaultWeight. Sentinel cells are skipped; a zero-weight or negative
// weight therefore makes the graph weighted.
// Complexity: O(cells) over the allocated matrix region.
func (g *Graph[T]) IsWeighted() bool {
	var row []float64
	var w float64
	for _, row = range g.adj.rows {
		for _, w = range row {
			if w < NoEdge && w != DefaultWeight {
				return true
			}
		}
	}

	return false
}

// IsComplete reports whether every distinct ordered pair within the matrix's
// allocated shape holds a non-sentinel weight equal to DefaultWeight. It is
// meaningful for directed graphs.
//
// Completeness here is a property of the matrix's populated region, not of
// the declared node set: a graph whose edges were never added has an empty
// matrix and reports complete vacuously, and small or irregular rows can
// produce results inconsistent with NodeCount. Callers wanting completeness
// over the node set must populate the full shape first.
// Complexity: O(cells).
func (g *Graph[T]) IsComplete() bool {
	var i, j int
	var row []float64
	var w float64
	for i, row = range g.adj.rows {
		for j, w = range row {
			if i == j {
				continue
			}
			if w != DefaultWeight {
				return false
			}
		}
	}

	return true
}
