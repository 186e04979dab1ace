// Package layout: circular and geodesic vertex placement.
package layout

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/graph"
	glayout "gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for layout computation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("layout: graph is nil")

	// ErrNoNodes is returned for a graph without vertices.
	ErrNoNodes = errors.New("layout: graph has no nodes")

	// ErrDegenerate is returned when geodesic scaling collapses every
	// vertex onto one point or produces non-finite coordinates, which
	// happens for disconnected graphs.
	ErrDegenerate = errors.New("layout: degenerate geodesic embedding")
)

// coordEps is the tolerance below which two coordinates count as equal
// for the degeneracy check.
const coordEps = 1e-12

// Circular returns n positions evenly spaced counter-clockwise on the
// unit circle, starting at (1,0). Index i is the position of node ID i.
// Returns nil for n <= 0.
// Complexity: O(n).
func Circular(n int) []r2.Vec {
	if n <= 0 {
		return nil
	}
	coords := make([]r2.Vec, n)
	for i := range coords {
		theta := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	return coords
}

// Geodesic embeds g in the plane by classical scaling of its shortest-path
// distance matrix. The returned slice is indexed by node ID and sized
// maxID+1; IDs must be non-negative.
//
// Returns ErrGraphNil, ErrNoNodes, or ErrDegenerate.
func Geodesic(g graph.Undirected) ([]r2.Vec, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}
	maxID := int64(-1)
	for _, n := range nodes {
		if n.ID() > maxID {
			maxID = n.ID()
		}
	}

	// The optimizer runs the isomap update until it reports completion;
	// classical scaling converges in a single pass.
	opt := glayout.NewOptimizerR2(g, glayout.IsomapR2{}.Update)
	for opt.Update() {
	}

	coords := make([]r2.Vec, maxID+1)
	for _, n := range nodes {
		coords[n.ID()] = opt.Coord2(n.ID())
	}
	if degenerate(coords, len(nodes)) {
		return nil, ErrDegenerate
	}

	return coords, nil
}

// degenerate reports whether the embedding is unusable: any non-finite
// coordinate regardless of vertex count, or more than one vertex with
// every position coincident.
func degenerate(coords []r2.Vec, n int) bool {
	first := coords[0]
	spread := false
	for _, v := range coords {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return true
		}
		if math.Abs(v.X-first.X) > coordEps || math.Abs(v.Y-first.Y) > coordEps {
			spread = true
		}
	}

	return n > 1 && !spread
}
