package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlviz/edgeindex"
)

// ErrNoEdgesPath signals a command that cannot run without --edges.
var ErrNoEdgesPath = errors.New("cli: edge-list path required (--edges)")

// loadEdges reads the edge-list CSV named by the configuration.
func loadEdges(path string) (*edgeindex.EdgeIndex, error) {
	if path == "" {
		return nil, ErrNoEdgesPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open edges: %w", err)
	}
	defer f.Close()

	idx, err := edgeindex.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cli: read %s: %w", path, err)
	}
	return idx, nil
}

// loadLabels reads a single-column CSV of integer class labels, one row
// per node id. A leading "label" header row is skipped.
func loadLabels(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open labels: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 1

	var labels []int
	first := true
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cli: read %s: %w", path, err)
		}
		field := strings.TrimSpace(rec[0])
		if first {
			first = false
			if strings.EqualFold(field, "label") {
				continue
			}
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("cli: read %s: bad label %q: %w", path, field, err)
		}
		labels = append(labels, v)
	}
	return labels, nil
}

// deriveFormat resolves the image encoding from --format, falling back
// to the output file extension and finally to PNG.
func deriveFormat(explicit, output string) (string, error) {
	switch strings.ToLower(explicit) {
	case "png", "svg":
		return strings.ToLower(explicit), nil
	case "":
	default:
		return "", fmt.Errorf("cli: unsupported format %q (want png or svg)", explicit)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".svg":
		return "svg", nil
	default:
		return "png", nil
	}
}
