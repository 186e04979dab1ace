// Package render: gonum graph construction from an edge index.
package render

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlviz/edgeindex"
)

// buildGraph constructs an undirected simple graph holding vertices
// 0..n-1 explicitly (isolated vertices included) and one edge per distinct
// endpoint pair. Self-loops cannot exist in a simple graph; they are
// skipped and their count returned so the caller can report them.
// Complexity: O(n + E).
func buildGraph(idx *edgeindex.EdgeIndex, n int) (*simple.UndirectedGraph, int) {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}

	loops := 0
	for i := range idx.Src {
		u, v := idx.Src[i], idx.Dst[i]
		if u == v {
			loops++
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(u), simple.Node(v)))
	}

	return g, loops
}
