// Package edgeindex: CSV import and export of edge lists.
//
// The on-disk format is one edge per record, "src,dst", with an optional
// leading header row. IDs are base-10 non-negative integers.
package edgeindex

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csv column headers written by WriteCSV and recognised by ReadCSV.
const (
	headerSrc = "src"
	headerDst = "dst"
)

// ReadCSV parses an edge list from r. A first record equal to the
// canonical header ("src,dst") is skipped; every other record must hold
// exactly two non-negative integers.
//
// Returns ErrBadRecord (wrapped with the offending line) on malformed
// input, or the underlying csv/io error.
// Complexity: O(E).
func ReadCSV(r io.Reader) (*EdgeIndex, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	idx := &EdgeIndex{}
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edgeindex: read csv: %w", err)
		}
		if first {
			first = false
			if rec[0] == headerSrc && rec[1] == headerDst {
				continue
			}
		}

		src, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadRecord, rec[0])
		}
		dst, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadRecord, rec[1])
		}
		if src < 0 || dst < 0 {
			return nil, fmt.Errorf("%w: negative id in %v", ErrBadRecord, rec)
		}

		idx.Src = append(idx.Src, src)
		idx.Dst = append(idx.Dst, dst)
	}

	return idx, nil
}

// WriteCSV writes the edge list to w with a "src,dst" header row.
// Complexity: O(E).
func (idx *EdgeIndex) WriteCSV(w io.Writer) error {
	if err := idx.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{headerSrc, headerDst}); err != nil {
		return fmt.Errorf("edgeindex: write csv header: %w", err)
	}
	for i := range idx.Src {
		rec := []string{
			strconv.FormatInt(idx.Src[i], 10),
			strconv.FormatInt(idx.Dst[i], 10),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("edgeindex: write csv record: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
