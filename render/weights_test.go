package render_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlviz/render"
)

// barbell builds two triangles joined by a single bridge edge 2–3:
//
//	0         4
//	│ \     / │
//	1──2───3──5
func barbell() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < 6; i++ {
		g.AddNode(simple.Node(i))
	}
	pairs := [][2]int64{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 4}, {3, 5}, {4, 5}}
	for _, p := range pairs {
		g.SetEdge(g.NewEdge(simple.Node(p[0]), simple.Node(p[1])))
	}

	return g
}

// TestNormalizedBetweenness_MaxIsOne: after normalization the strongest
// edge's weight is exactly 1 whenever some edge has a positive log.
func TestNormalizedBetweenness_MaxIsOne(t *testing.T) {
	bc := network.EdgeBetweenness(barbell())
	values := make([]float64, 0, len(bc))
	for _, v := range bc {
		values = append(values, v)
	}

	norm := render.NormalizedBetweennessForTest(values)
	require.Len(t, norm, len(values))

	max := 0.0
	for _, w := range norm {
		require.False(t, math.IsNaN(w))
		require.GreaterOrEqual(t, w, 0.0)
		require.LessOrEqual(t, w, 1.0)
		if w > max {
			max = w
		}
	}
	require.InDelta(t, 1.0, max, 1e-12)
}

// TestNormalizedBetweenness_Degenerate: all values ≤ 1 log to zero and
// stay zero (no division by a zero maximum).
func TestNormalizedBetweenness_Degenerate(t *testing.T) {
	norm := render.NormalizedBetweennessForTest([]float64{0, 0.5, 1})
	require.Equal(t, []float64{0, 0, 0}, norm)

	require.Nil(t, render.NormalizedBetweennessForTest(nil))
}

// TestBetweennessWidths_PowerLaw: the sixth power preserves 0 and 1 and
// suppresses mid-range weights.
func TestBetweennessWidths_PowerLaw(t *testing.T) {
	// e, e², e⁴ log to 1, 2, 4 → normalized 0.25, 0.5, 1.
	values := []float64{math.E, math.E * math.E, math.Pow(math.E, 4)}

	widths := render.BetweennessWidthsForTest(values)
	require.InDelta(t, math.Pow(0.25, 6), widths[0], 1e-12)
	require.InDelta(t, math.Pow(0.5, 6), widths[1], 1e-12)
	require.InDelta(t, 1.0, widths[2], 1e-12)
}
