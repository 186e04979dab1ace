package edgeindex_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz/edgeindex"
)

// TestPairsRoundTrip checks FromPairs/Pairs symmetry.
func TestPairsRoundTrip(t *testing.T) {
	pairs := []edgeindex.Pair{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 2, Dst: 0}}
	idx := edgeindex.FromPairs(pairs)

	require.Equal(t, 3, idx.Len())
	require.Equal(t, pairs, idx.Pairs())
}

// TestNumNodes_UnionSemantics: node count is the union of both slices,
// not the max ID.
func TestNumNodes_UnionSemantics(t *testing.T) {
	idx := &edgeindex.EdgeIndex{Src: []int64{0, 5}, Dst: []int64{5, 0}}
	require.Equal(t, 2, idx.NumNodes())
	require.Equal(t, int64(5), idx.MaxID())
}

// TestValidate covers the structural invariants.
func TestValidate(t *testing.T) {
	ok := &edgeindex.EdgeIndex{Src: []int64{0}, Dst: []int64{1}}
	require.NoError(t, ok.Validate())

	mismatch := &edgeindex.EdgeIndex{Src: []int64{0, 1}, Dst: []int64{1}}
	require.ErrorIs(t, mismatch.Validate(), edgeindex.ErrLengthMismatch)

	negative := &edgeindex.EdgeIndex{Src: []int64{0}, Dst: []int64{-3}}
	require.ErrorIs(t, negative.Validate(), edgeindex.ErrNegativeID)

	var nilIdx *edgeindex.EdgeIndex
	require.ErrorIs(t, nilIdx.Validate(), edgeindex.ErrNilIndex)
}

// TestCSV_RoundTrip writes and re-reads an edge list.
func TestCSV_RoundTrip(t *testing.T) {
	idx := &edgeindex.EdgeIndex{Src: []int64{0, 1, 2}, Dst: []int64{1, 2, 0}}

	var buf bytes.Buffer
	require.NoError(t, idx.WriteCSV(&buf))

	got, err := edgeindex.ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, idx, got)
}

// TestReadCSV_NoHeader accepts headerless input.
func TestReadCSV_NoHeader(t *testing.T) {
	got, err := edgeindex.ReadCSV(strings.NewReader("0,1\n1,0\n"))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1}, got.Src)
	require.Equal(t, []int64{1, 0}, got.Dst)
}

// TestReadCSV_BadRecord rejects non-integer and negative IDs.
func TestReadCSV_BadRecord(t *testing.T) {
	_, err := edgeindex.ReadCSV(strings.NewReader("a,1\n"))
	require.ErrorIs(t, err, edgeindex.ErrBadRecord)

	_, err = edgeindex.ReadCSV(strings.NewReader("src,dst\n-1,2\n"))
	require.ErrorIs(t, err, edgeindex.ErrBadRecord)
}
