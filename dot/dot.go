// Package dot serializes dense-matrix graphs into a deterministic DOT-like
// plain-text description.
//
// The grammar is a fixed external interface:
//
//	graph G {
//	  0;
//	  1;
//	  0 -- 1;
//	  1 -- 0;
//	}
//
// Directed graphs use the "digraph" header and the "->" connector. One
// statement is emitted per node index and one per ordered pair (i, j) where
// HasEdge(i, j) holds — undirected graphs therefore emit both "i -- j" and
// "j -- i", preserving the unconditional double form. Weights are not
// emitted. Phantom matrix cells beyond the node count never appear.
package dot

import (
	"strconv"
	"strings"
)

// Connector and framing literals of the textual grammar.
const (
	headerUndirected = "graph G {\n"
	headerDirected   = "digraph G {\n"
	connUndirected   = " -- "
	connDirected     = " -> "
	indent           = "  "
	stmtEnd          = ";\n"
	footer           = "}\n"
)

// Graph is the read-only view Marshal consumes.
// *core.Graph[T] satisfies it for any label type T.
type Graph interface {
	// NodeCount returns the number of nodes currently stored.
	NodeCount() int

	// HasEdge reports whether an edge from→to exists.
	HasEdge(from, to int) bool

	// Directed reports whether edge writes are single-directional.
	Directed() bool
}

// Marshal renders g in the DOT-like grammar above: header line naming the
// graph kind, one statement per node index, one statement per ordered pair
// with an edge, and the trailing close.
// Complexity: O(V²).
func Marshal(g Graph) string {
	header, connector := headerUndirected, connUndirected
	if g.Directed() {
		header, connector = headerDirected, connDirected
	}

	var b strings.Builder
	b.WriteString(header)

	// 1) Node statements, by index.
	n := g.NodeCount()
	var i, j int
	for i = 0; i < n; i++ {
		b.WriteString(indent)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(stmtEnd)
	}

	// 2) Edge statements, every ordered pair checked.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !g.HasEdge(i, j) {
				continue
			}
			b.WriteString(indent)
			b.WriteString(strconv.Itoa(i))
			b.WriteString(connector)
			b.WriteString(strconv.Itoa(j))
			b.WriteString(stmtEnd)
		}
	}

	b.WriteString(footer)

	return b.String()
}
