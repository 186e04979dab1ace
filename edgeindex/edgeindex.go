// Package edgeindex: EdgeIndex type, constructors, and basic accessors.
package edgeindex

import "errors"

// Sentinel errors for edge-index construction and validation.
var (
	// ErrNilMatrix indicates a nil *mat.Dense was passed to a converter.
	ErrNilMatrix = errors.New("edgeindex: matrix is nil")

	// ErrEmptyMatrix indicates a matrix with zero rows or columns.
	ErrEmptyMatrix = errors.New("edgeindex: matrix is empty")

	// ErrNonSquare indicates a converter required a square matrix.
	ErrNonSquare = errors.New("edgeindex: matrix is not square")

	// ErrNilIndex indicates a nil *EdgeIndex receiver or argument.
	ErrNilIndex = errors.New("edgeindex: edge index is nil")

	// ErrLengthMismatch indicates Src and Dst differ in length.
	ErrLengthMismatch = errors.New("edgeindex: source/target length mismatch")

	// ErrNegativeID indicates a node ID below zero.
	ErrNegativeID = errors.New("edgeindex: negative node id")

	// ErrBadRecord indicates a malformed CSV record.
	ErrBadRecord = errors.New("edgeindex: bad csv record")

	// ErrDimension indicates a requested matrix dimension too small to
	// hold every node ID present in the index.
	ErrDimension = errors.New("edgeindex: matrix dimension below node ids")
)

// EdgeIndex holds directed edges as two parallel node-ID slices:
// edge i runs Src[i]→Dst[i]. Node IDs are non-negative and are treated
// as dense 0..max when sizing per-node arrays downstream.
type EdgeIndex struct {
	// Src holds the source node ID of each edge.
	Src []int64

	// Dst holds the target node ID of each edge.
	Dst []int64

	// dim is the source adjacency-matrix dimension when known (set by
	// FromAdjacency); zero for indices built from edges directly.
	dim int
}

// Pair is a single (source, target) edge, used by FromPairs and Pairs.
type Pair struct {
	Src, Dst int64
}

// FromPairs builds an EdgeIndex from a slice of edges.
// Complexity: O(E).
func FromPairs(pairs []Pair) *EdgeIndex {
	idx := &EdgeIndex{
		Src: make([]int64, len(pairs)),
		Dst: make([]int64, len(pairs)),
	}
	for i, p := range pairs {
		idx.Src[i] = p.Src
		idx.Dst[i] = p.Dst
	}

	return idx
}

// Pairs returns the edges as a slice of Pair values, in index order.
// Complexity: O(E).
func (idx *EdgeIndex) Pairs() []Pair {
	pairs := make([]Pair, len(idx.Src))
	for i := range idx.Src {
		pairs[i] = Pair{Src: idx.Src[i], Dst: idx.Dst[i]}
	}

	return pairs
}

// Len returns the number of edges.
// Complexity: O(1).
func (idx *EdgeIndex) Len() int { return len(idx.Src) }

// NumNodes returns the number of distinct node IDs appearing as a source
// or a target — the union of both slices.
// Complexity: O(E).
func (idx *EdgeIndex) NumNodes() int {
	seen := make(map[int64]struct{}, len(idx.Src))
	for _, id := range idx.Src {
		seen[id] = struct{}{}
	}
	for _, id := range idx.Dst {
		seen[id] = struct{}{}
	}

	return len(seen)
}

// MaxID returns the highest node ID present, or -1 for an empty index.
// Complexity: O(E).
func (idx *EdgeIndex) MaxID() int64 {
	max := int64(-1)
	for _, id := range idx.Src {
		if id > max {
			max = id
		}
	}
	for _, id := range idx.Dst {
		if id > max {
			max = id
		}
	}

	return max
}

// Validate checks the structural invariants: parallel slices of equal
// length and non-negative node IDs.
// Returns ErrNilIndex, ErrLengthMismatch or ErrNegativeID.
// Complexity: O(E).
func (idx *EdgeIndex) Validate() error {
	if idx == nil {
		return ErrNilIndex
	}
	if len(idx.Src) != len(idx.Dst) {
		return ErrLengthMismatch
	}
	for i := range idx.Src {
		if idx.Src[i] < 0 || idx.Dst[i] < 0 {
			return ErrNegativeID
		}
	}

	return nil
}
