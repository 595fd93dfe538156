// Package traverse implements the single reachability exploration shared by
// every structural predicate in this library, and the predicates themselves:
// connectivity, strong connectivity, bipartiteness, tree/DAG/cycle checks,
// and the Eulerian degree rule.
//
// The engine is one stack-based (LIFO, depth-first) traversal seeded with
// node index 0. Each predicate reuses it unchanged with a different success
// criterion, so every traversal-based predicate tests reachability from node
// 0 specifically — a documented limitation when the graph is disconnected
// into components not containing node 0.
//
// Predicates accept any Topology — an index-based view satisfied by
// *core.Graph[T] regardless of its label type — and never error: a zero-node
// graph short-circuits to the vacuous answer (connected, bipartite, tree and
// DAG hold; cyclic does not) instead of seeding an out-of-range root.
//
// Contract fidelity notes (narrow semantics, kept on purpose):
//
//   - IsCyclic reports that NOT every node is reachable from node 0. That
//     conflates "some node unreachable" with "cyclic" and is not a general
//     cycle test.
//   - IsTree and IsDAG share one body: the reachability traversal plus a
//     per-discovery HasEdge re-check. A true tree check and a true DAG check
//     are materially different properties; these are not them.
//   - IsEulerian is a pure odd-degree counting rule without a connectivity
//     requirement, narrower than the general Eulerian-path criterion.
//
// Complexity: every traversal-based predicate is O(V²) on the dense model
// (each neighbor scan is O(V)); IsEulerian is O(V²) via the degree scans.
package traverse
