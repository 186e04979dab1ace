// Package lvlviz turns raw graph connectivity data into pictures and
// quick structural reports.
//
// 🚀 What is lvlviz?
//
//	A small library for the inspection side of graph work:
//		• Edge indices: parallel source/target ID slices + adjacency-matrix
//		  converters (including connectivity-mask detection)
//		• Degree statistics: in/out-degree arrays and out-degree histograms,
//		  rendered as stacked distribution plots
//		• Graph rendering: quick circular drawings or styled renders with
//		  betweenness-weighted edges and degree-scaled vertices
//		• Deterministic layouts: circular and geodesic (classical scaling
//		  over shortest-path distances)
//
// ✨ Why choose lvlviz?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – reproducible layouts and stable rendering output
//   - gonum-native – adjacency input as *mat.Dense, graphs as graph/simple,
//     heavy lifting (betweenness, scaling) delegated to gonum
//   - Writer-based – every render goes to an io.Writer (PNG or SVG),
//     no display server required
//
// Everything is organized under four subpackages plus a CLI:
//
//	edgeindex/ — EdgeIndex type, adjacency converters, CSV import/export
//	degree/    — in/out-degree statistics and distribution plots
//	layout/    — circular and geodesic vertex placement
//	render/    — the visualization dispatcher (quick and styled tools)
//	cmd/lvlviz — command-line front end over the packages above
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a square: every vertex has degree 2, the out-degree histogram is [0,0,4].
//
// Dive into the package docs and examples for full usage patterns.
//
//	go get github.com/katalvlaran/lvlviz
package lvlviz
