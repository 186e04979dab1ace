// Package edgeindex: dense adjacency-matrix converters.
package edgeindex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// activeValue reports which cell value marks "edge present" in m.
// A matrix with any ±Inf entry is a connectivity mask: such masks encode
// absence with -Inf and presence with 0. Plain binary adjacency matrices
// encode presence with 1.
// Complexity: O(n²) worst case (early exit on the first infinite cell).
func activeValue(m *mat.Dense) float64 {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.IsInf(m.At(i, j), 0) {
				return 0
			}
		}
	}

	return 1
}

// FromAdjacency converts a square adjacency matrix (or connectivity mask)
// into an EdgeIndex. Every cell equal to the detected active value emits
// one directed edge (row → column), rows scanned in order, columns inner.
//
// The mask heuristic is deliberately not hardened: consistency of the
// encoding is the caller's responsibility (see package doc).
//
// Returns ErrNilMatrix, ErrEmptyMatrix or ErrNonSquare on bad input.
// Complexity: O(n²) time, O(E) memory.
func FromAdjacency(m *mat.Dense) (*EdgeIndex, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	if r != c {
		return nil, ErrNonSquare
	}

	active := activeValue(m)

	idx := &EdgeIndex{dim: r}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) == active {
				idx.Src = append(idx.Src, int64(i))
				idx.Dst = append(idx.Dst, int64(j))
			}
		}
	}

	return idx, nil
}

// ToAdjacency rebuilds a binary adjacency matrix from the index. An index
// built by FromAdjacency remembers the source dimension, so the round trip
// reproduces the original matrix exactly: trailing isolated nodes keep
// their rows and an all-zero matrix comes back all-zero. Indices built
// from edges directly are sized MaxID()+1.
//
// Returns ErrNilIndex on a nil receiver and ErrEmptyMatrix when neither a
// dimension nor any edge is available; invariant violations surface via
// Validate's sentinels.
// Complexity: O(n² + E).
func (idx *EdgeIndex) ToAdjacency() (*mat.Dense, error) {
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	n := int64(idx.dim)
	if n == 0 {
		n = idx.MaxID() + 1
	}
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	return idx.ToAdjacencyN(int(n))
}

// ToAdjacencyN rebuilds a binary n×n adjacency matrix from the index,
// for callers that know the intended node count regardless of which IDs
// carry edges.
//
// Returns ErrEmptyMatrix for n <= 0 and ErrDimension when n cannot hold
// the highest node ID present; invariant violations surface via
// Validate's sentinels.
// Complexity: O(n² + E).
func (idx *EdgeIndex) ToAdjacencyN(n int) (*mat.Dense, error) {
	if err := idx.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, ErrEmptyMatrix
	}
	if int64(n) <= idx.MaxID() {
		return nil, fmt.Errorf("%w: need at least %d", ErrDimension, idx.MaxID()+1)
	}

	m := mat.NewDense(n, n, nil)
	for i := range idx.Src {
		m.Set(int(idx.Src[i]), int(idx.Dst[i]), 1)
	}

	return m, nil
}
