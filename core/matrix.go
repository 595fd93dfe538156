// File: matrix.go
// Role: Row-ragged dense weight storage keyed by (row, column) node index.
// Determinism:
//   - Rows grow lazily and independently; new cells are filled with NoEdge.
//   - Reads past a row's allocated length return NoEdge, never an error.
// Concurrency:
//   - None. Growth is not atomic across steps; callers own synchronization.

package core

// adjacency is the ragged 2D weight store backing a Graph.
// Each row may have a different allocated length; absence of an edge is the
// sentinel NoEdge stored in (or implied beyond) the cell, never a missing row.
type adjacency struct {
	rows [][]float64
}

// at returns the weight stored at (i, j), or NoEdge when the cell lies
// outside the allocated shape. Negative indices are treated as out of shape.
// Complexity: O(1).
func (m *adjacency) at(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(m.rows) || j >= len(m.rows[i]) {
		return NoEdge
	}

	return m.rows[i][j]
}

// set stores weight w at (i, j), growing the row slice and the addressed row
// as needed. Freshly allocated cells are initialized to NoEdge so growth
// never fabricates edges. Indices must be non-negative (checked by callers).
// Complexity: O(max(i,j)) worst case for growth, O(1) amortized thereafter.
func (m *adjacency) set(i, j int, w float64) {
	// 1) Grow the row list to cover row i.
	for len(m.rows) <= i {
		m.rows = append(m.rows, nil)
	}

	// 2) Grow row i to cover column j, padding with the sentinel.
	for len(m.rows[i]) <= j {
		m.rows[i] = append(m.rows[i], NoEdge)
	}

	// 3) Store the weight.
	m.rows[i][j] = w
}

// clear resets (i, j) back to the sentinel without growing the matrix:
// a cell outside the allocated shape already reads as NoEdge.
// Complexity: O(1).
func (m *adjacency) clear(i, j int) {
	if i < 0 || j < 0 || i >= len(m.rows) || j >= len(m.rows[i]) {
		return
	}
	m.rows[i][j] = NoEdge
}

// clone returns a deep copy of the ragged storage.
// Complexity: O(cells).
func (m *adjacency) clone() adjacency {
	cp := adjacency{rows: make([][]float64, len(m.rows))}
	var i int
	var row []float64
	for i, row = range m.rows {
		if row == nil {
			continue
		}
		cp.rows[i] = make([]float64, len(row))
		copy(cp.rows[i], row)
	}

	return cp
}
