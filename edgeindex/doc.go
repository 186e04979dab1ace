// Package edgeindex provides the EdgeIndex representation of directed
// edges — two parallel slices of node IDs — together with converters from
// and to dense adjacency matrices and a CSV import/export surface.
//
// What
//
//   - EdgeIndex: Src[i]→Dst[i] pairs, node IDs are non-negative int64.
//   - FromAdjacency: scan a square *mat.Dense and emit one edge per cell
//     holding the active value. The active value is auto-detected: a matrix
//     containing any ±Inf entry is treated as a connectivity mask
//     (0 = edge present, -Inf = absent); otherwise 1 marks an edge.
//   - ToAdjacency: rebuild a dense binary adjacency matrix. Indices made
//     by FromAdjacency keep the source dimension, so the round trip is
//     exact even when trailing nodes are isolated or the matrix is all
//     zeros; hand-built indices are sized by the highest node ID observed,
//     or explicitly via ToAdjacencyN.
//   - NumNodes: cardinality of the union of source and target IDs.
//   - ReadCSV / WriteCSV: "src,dst" records, one edge per row.
//
// Why
//
//	Edge indices are the lingua franca between dataset loaders, degree
//	statistics and rendering: cheap to build, trivial to iterate, and
//	index-friendly for dense per-node arrays.
//
// Active-value detection
//
//	The mask heuristic is intentionally permissive: it inspects only
//	whether an infinite entry exists, and does not verify that the matrix
//	uses one convention consistently. Mixed-convention input produces a
//	well-defined but probably unwanted edge set. Callers that need strict
//	input validation should pre-validate their matrices.
//
// Complexity (n = matrix dimension, E = |edges|)
//
//   - FromAdjacency: O(n²) time, O(E) memory — dense scan, no sparse path.
//   - ToAdjacency:   O(n² + E).
//   - NumNodes:      O(E).
//
// Errors
//
//   - ErrNilMatrix      nil *mat.Dense input.
//   - ErrEmptyMatrix    zero-sized matrix.
//   - ErrNonSquare      rows != cols.
//   - ErrNilIndex       nil *EdgeIndex receiver/argument.
//   - ErrLengthMismatch len(Src) != len(Dst).
//   - ErrNegativeID     a node ID below zero.
//   - ErrBadRecord      malformed CSV record.
//   - ErrDimension      requested matrix dimension below the node IDs.
//
// All sentinels are matched with errors.Is.
package edgeindex
