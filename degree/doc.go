// Package degree computes per-node degree statistics from an edge index
// and renders them as stacked distribution plots.
//
// What
//
//   - Compute: one pass over the edges, incrementing the source's
//     out-degree and the target's in-degree. Arrays are dense, indexed by
//     node ID, sized by the node count (union of sources and targets).
//   - ComputeAdjacency: accepts a square adjacency matrix and converts it
//     through edgeindex.FromAdjacency first.
//   - Plot: three vertically stacked charts — in-degree by node ID,
//     out-degree by node ID, and the out-degree frequency histogram —
//     titled with the dataset name and written as PNG or SVG.
//
// Why
//
//	Degree distributions are the first sanity check on any graph dataset:
//	they expose isolated nodes, hubs, and loading bugs long before any
//	heavier network analysis runs.
//
// Degree arrays assume IDs are dense 0..NumNodes-1; an edge referencing
// an ID at or beyond the node count yields ErrIDOutOfRange rather than a
// silent mis-count.
//
// Complexity (E = |edges|, n = node count, D = max out-degree)
//
//   - Compute: O(E + n + D) time, O(n + D) memory.
//   - Plot:    O(n + D) points handed to the plotting backend.
//
// Errors
//
//   - ErrIndexNil        nil edge index.
//   - ErrNoEdges         the index holds no edges.
//   - ErrIDOutOfRange    an edge references a node ID ≥ node count.
//   - ErrStatsNil        nil *Stats passed to Plot.
//   - ErrOptionViolation an invalid Option was supplied.
//
// Rendering goes to an io.Writer supplied by the caller; the package never
// opens windows or writes files on its own.
package degree
