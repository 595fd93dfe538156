// Package core defines the central Graph type and provides primitives for
// building and querying dense adjacency-matrix graphs.
//
// A Graph[T] pairs an ordered node store (insertion-order integer indices
// over opaque labels of type T) with a row-ragged weight matrix. A cell
// (from, to) holds the edge weight; the reserved sentinel NoEdge (+Inf)
// denotes absence, so zero-weight and negative-weight edges remain
// representable. Matrix rows grow lazily to the highest column index
// referenced so far, and reading past a row's allocated length is "no edge",
// never an error.
//
// Directedness is fixed at construction time (New vs. NewDirected, or
// WithDirected). Undirected graphs mirror every edge write into (to, from)
// within the same call, so has-edge symmetry holds at all times.
//
// Node indices denote current position, not persistent identity: removing
// node k shifts every later index down by one, and the matrix is NOT
// compacted on removal. Callers holding indices across mutation must account
// for both.
//
// Errors:
//
//	ErrIndexOutOfRange - a node index is negative or beyond the node count
//	                     on a checked path (RemoveNode et al.).
//
// All operations are single-threaded and synchronous. A Graph is exclusively
// owned by its caller; no method is safe for concurrent use on the same
// instance without external synchronization, since matrix growth and node
// store growth are not atomic across steps.
package core
