// Package algebra provides set-style operators over dense-matrix graphs:
// union, intersection, difference, symmetric difference, complement,
// reverse, transitive closure, and induced subgraphs.
//
// Every operator constructs a brand-new graph — operands are never mutated.
// The result inherits the first operand's directedness and node labels.
// Binary operators assume operand node sets are aligned by index: node i in
// one operand denotes the same entity as node i in the other; no identity
// matching by label is performed. Edge decisions iterate all index pairs of
// the first operand's node set, so phantom matrix cells beyond it never
// leak into results.
//
// Weight policy: the set operators carry the weight of the operand that owns
// the edge (the first operand wins when both do); Complement and
// TransitiveClosure emit unit weight, the closure being unweighted
// reachability rather than a weighted distance closure.
//
// Complexity: all pairwise operators are O(V²); TransitiveClosure is O(V³).
package algebra
