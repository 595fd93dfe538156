// Package dijkstra implements single-source shortest paths on the dense
// adjacency-matrix graph model.
//
// SingleSource computes the minimum-cost distance and the reconstructed path
// from one source node to every node in the graph. Because the graph is
// dense, the classic O(V²) formulation is used: the next node to finalize is
// found by a linear scan over unvisited distances instead of a priority
// queue, and every unvisited node is probed as a relaxation candidate
// through HasEdge/Weight.
//
// Complexity:
//
//   - Time:  O(V²) — V linear min-scans of O(V) plus V relaxation sweeps of O(V).
//   - Space: O(V) for the distance, visited and parent arrays, plus the
//     reconstructed paths (O(V²) worst case in total path length).
//
// Contract:
//
//   - An out-of-range source is not an error: the result is all-Unreachable
//     distances and all-empty paths.
//   - Unreachable nodes have distance Unreachable (+Inf) and an empty path.
//   - The path to the source itself is [source].
//   - Negative edge weights are not supported; behavior is unspecified (not
//     validated) when they are present.
//
// Point-to-point queries are derived from the single-source run: Path(g,
// start, end) reads the reconstructed path to end. There is deliberately no
// separate point-to-point relaxation routine.
package dijkstra
