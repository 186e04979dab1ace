// Package layout places graph vertices on the plane deterministically.
//
// What
//
//   - Circular: n evenly spaced positions on the unit circle, in node-ID
//     order. The default placement for quick renders.
//   - Geodesic: classical scaling over all-pairs shortest-path distances
//     (gonum graph/layout's isomap optimizer). Vertices that are close in
//     the graph end up close on the canvas, the same family of embeddings
//     as force-directed methods such as Kamada–Kawai.
//
// Why
//
//	Rendering needs coordinates; reproducible coordinates make renders
//	diffable. Both layouts here are fully deterministic: no random seeds,
//	no simulation schedules.
//
// Geodesic requires a connected graph — infinite pairwise distances have
// no finite embedding, which surfaces as ErrDegenerate. Callers can fall
// back to Circular in that case.
//
// Complexity (n = |V|, E = |edges|)
//
//   - Circular: O(n).
//   - Geodesic: dominated by the all-pairs shortest paths and the spectral
//     step inside gonum, O(n² log n + nE) time and O(n²) memory.
//
// Errors
//
//   - ErrGraphNil    nil graph.
//   - ErrNoNodes     graph without vertices.
//   - ErrDegenerate  the embedding collapsed (disconnected input or a
//     failed spectral decomposition).
package layout
