// File: methods_clone.go
// Role: Deep copy of a Graph: node store and ragged matrix duplicated so the
//       clone and the original never share mutable state.

package core

// Clone returns a deep copy of g: labels are copied by value, the ragged
// matrix row by row. Mutating the clone never affects the original.
// Complexity: O(V + cells).
func (g *Graph[T]) Clone() *Graph[T] {
	cp := &Graph[T]{
		directed: g.directed,
		nodes:    make([]T, len(g.nodes)),
		adj:      g.adj.clone(),
	}
	copy(cp.nodes, g.nodes)

	return cp
}
