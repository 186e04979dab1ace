// Package degree: degree-statistics computation.
package degree

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlviz/edgeindex"
)

// Sentinel errors for degree computation.
var (
	// ErrIndexNil is returned when the edge index is nil.
	ErrIndexNil = errors.New("degree: edge index is nil")

	// ErrNoEdges is returned when the edge index holds no edges.
	ErrNoEdges = errors.New("degree: edge index has no edges")

	// ErrIDOutOfRange is returned when an edge references a node ID
	// at or beyond the node count (IDs must be dense 0..n-1).
	ErrIDOutOfRange = errors.New("degree: node id out of range")
)

// Stats holds the degree statistics of a single graph.
// All slices are indexed by node ID except Hist, which is indexed by
// out-degree value.
type Stats struct {
	// In counts edges terminating at each node.
	In []int

	// Out counts edges originating from each node.
	Out []int

	// Hist is the out-degree frequency histogram: Hist[d] is the number
	// of nodes whose out-degree equals d. Its length is max(Out)+1.
	Hist []int

	// NumNodes is the number of distinct node IDs in the index.
	NumNodes int
}

// Compute builds in-degree and out-degree arrays in a single pass over
// the edges, then the out-degree histogram.
//
// Returns ErrIndexNil, ErrNoEdges, ErrIDOutOfRange, or a Validate
// sentinel from edgeindex.
// Complexity: O(E + n + D).
func Compute(idx *edgeindex.EdgeIndex) (*Stats, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	if idx.Len() == 0 {
		return nil, ErrNoEdges
	}

	n := idx.NumNodes()
	s := &Stats{
		In:       make([]int, n),
		Out:      make([]int, n),
		NumNodes: n,
	}

	// Source nodes point towards target nodes: one increment each per edge.
	for i := range idx.Src {
		src, dst := idx.Src[i], idx.Dst[i]
		if src >= int64(n) || dst >= int64(n) {
			return nil, ErrIDOutOfRange
		}
		s.Out[src]++
		s.In[dst]++
	}

	maxOut := 0
	for _, d := range s.Out {
		if d > maxOut {
			maxOut = d
		}
	}
	s.Hist = make([]int, maxOut+1)
	for _, d := range s.Out {
		s.Hist[d]++
	}

	return s, nil
}

// ComputeAdjacency converts a square adjacency matrix (or connectivity
// mask) into an edge index and computes its degree statistics.
//
// Returns edgeindex conversion sentinels or Compute's errors.
// Complexity: O(n² + E).
func ComputeAdjacency(m *mat.Dense) (*Stats, error) {
	idx, err := edgeindex.FromAdjacency(m)
	if err != nil {
		return nil, err
	}

	return Compute(idx)
}
