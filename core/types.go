// Package core declares the Graph type, Edge value, sentinel errors,
// weight constants, and the functional GraphOption constructor knobs.
package core

import (
	"errors"
	"math"
)

// NoEdge is the reserved sentinel weight denoting "no edge exists".
// It is positive infinity so that zero-weight and negative-weight edges
// stay representable and distinguishable from absence.
var NoEdge = math.Inf(1)

// DefaultWeight is the unit weight assigned when no explicit weight is given.
const DefaultWeight = 1.0

// Sentinel errors for core graph operations.
var (
	// ErrIndexOutOfRange indicates a node index outside the valid range
	// on a checked mutation or query path.
	ErrIndexOutOfRange = errors.New("core: node index out of range")
)

// Edge is a materialized view of one matrix cell: the ordered endpoints and
// the stored weight. Edges are not first-class entities inside the Graph;
// this value is produced on demand by query methods (EdgesFrom, EdgesTo) and
// consumed by bulk insertion (AddWeightedEdgesFrom).
type Edge struct {
	// From is the source node index.
	From int

	// To is the destination node index.
	To int

	// Weight is the stored edge weight.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *config)

// config collects construction-time flags applied by GraphOptions.
type config struct {
	directed bool
}

// WithDirected sets whether edge writes are single-directional (true) or
// mirrored symmetrically into the transposed cell (false).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}
