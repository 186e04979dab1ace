// Package render draws graphs from edge indices using one of two
// rendering tools, writing PNG or SVG output to a caller-supplied writer.
//
// What
//
//   - ToolQuick: build an undirected graph from the edge list, place the
//     vertices on a circle, draw with uniform styling. The fast look-at-it
//     variant.
//   - ToolStyled: one-shot styled render — per-edge widths derived from
//     edge betweenness (log-clipped, max-normalized, raised to the 6th
//     power so the strongest paths dominate visually), vertex radii
//     proportional to half the vertex degree, an explicit per-dataset
//     vertex color table (Cora's 7 classes map to fixed colors; anything
//     else takes the default color), and a geodesic layout with a circular
//     fallback for disconnected graphs.
//   - Any other tool value fails with ErrUnsupportedTool naming the value.
//
// Why
//
//	Betweenness-weighted edge widths make the structural backbone of a
//	graph visible at a glance: bridges and bottlenecks thicken, peripheral
//	edges fade, and hubs grow with their degree.
//
// Every call is a stateless one-shot render: no caches, no shared state,
// no window handles. Progress and guidance messages go to the configured
// zap logger (a no-op logger by default).
//
// Complexity is dominated by the delegated analysis: edge betweenness is
// O(V·E) for unweighted graphs and the geodesic layout is O(V² log V + VE).
// The package's own bookkeeping is O(V + E).
//
// Errors
//
//   - ErrUnsupportedTool  tool selector outside the two supported variants.
//   - ErrIndexNil         nil edge index.
//   - ErrNoEdges          empty edge index.
//   - ErrLabelCount       fewer labels than vertices for a color-mapped dataset.
//   - ErrUnknownLabel     a label missing from the dataset's color table.
//   - ErrOptionViolation  an invalid Option was supplied.
package render
