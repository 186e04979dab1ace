package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvlviz/layout"
)

// TestCircular checks count, determinism and unit radius.
func TestCircular(t *testing.T) {
	coords := layout.Circular(4)
	require.Len(t, coords, 4)

	// Deterministic: a second call yields identical positions.
	require.Equal(t, coords, layout.Circular(4))

	// First position is (1,0); all positions sit on the unit circle.
	require.InDelta(t, 1, coords[0].X, 1e-12)
	require.InDelta(t, 0, coords[0].Y, 1e-12)
	for _, v := range coords {
		require.InDelta(t, 1, math.Hypot(v.X, v.Y), 1e-12)
	}

	require.Nil(t, layout.Circular(0))
}

// pathGraph builds the undirected path 0–1–…–(n-1).
func pathGraph(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n-1; i++ {
		g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(i+1)))
	}

	return g
}

// TestGeodesic_Path embeds a path graph: endpoints must land farther
// apart than adjacent vertices.
func TestGeodesic_Path(t *testing.T) {
	coords, err := layout.Geodesic(pathGraph(5))
	require.NoError(t, err)
	require.Len(t, coords, 5)

	dist := func(a, b int) float64 {
		return math.Hypot(coords[a].X-coords[b].X, coords[a].Y-coords[b].Y)
	}
	require.Greater(t, dist(0, 4), dist(0, 1))
}

// TestDegenerate_NonFinite: non-finite coordinates are degenerate even
// for a single vertex, before the coincidence rule applies.
func TestDegenerate_NonFinite(t *testing.T) {
	require.True(t, layout.DegenerateForTest([]r2.Vec{{X: math.NaN()}}, 1))
	require.True(t, layout.DegenerateForTest([]r2.Vec{{Y: math.Inf(1)}}, 1))

	// A finite single vertex is a valid embedding.
	require.False(t, layout.DegenerateForTest([]r2.Vec{{X: 0, Y: 0}}, 1))

	// Two coincident vertices are not.
	require.True(t, layout.DegenerateForTest([]r2.Vec{{}, {}}, 2))
}

// TestGeodesic_Errors covers nil, empty and disconnected graphs.
func TestGeodesic_Errors(t *testing.T) {
	_, err := layout.Geodesic(nil)
	require.ErrorIs(t, err, layout.ErrGraphNil)

	_, err = layout.Geodesic(simple.NewUndirectedGraph())
	require.ErrorIs(t, err, layout.ErrNoNodes)

	// Two components: no finite embedding of infinite distances.
	g := simple.NewUndirectedGraph()
	for i := 0; i < 4; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
	g.SetEdge(g.NewEdge(simple.Node(2), simple.Node(3)))
	_, err = layout.Geodesic(g)
	require.ErrorIs(t, err, layout.ErrDegenerate)
}
