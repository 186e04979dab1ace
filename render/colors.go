// Package render: dataset-specific vertex color tables.
//
// Color schemes are an explicit lookup keyed by dataset identifier with a
// clearly separated default path — adding a dataset means adding a table
// entry, not another branch in the renderer.
package render

import (
	"image/color"
	"strings"
)

// Dataset identifies a dataset with a predefined vertex color scheme.
type Dataset string

// Datasets with built-in color schemes.
const (
	// DatasetCora is the Cora citation network; its 7 class labels map to
	// fixed colors.
	DatasetCora Dataset = "cora"
)

// Default drawing colors.
var (
	// defaultVertexColor fills vertices of datasets without a color table.
	defaultVertexColor = color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff} // steel blue

	// edgeColor strokes all edges.
	edgeColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xb4}
)

// datasetColors maps each known dataset to its label→color table.
var datasetColors = map[Dataset]map[int]color.Color{
	DatasetCora: {
		0: color.RGBA{R: 0xff, A: 0xff},                     // red
		1: color.RGBA{B: 0xff, A: 0xff},                     // blue
		2: color.RGBA{G: 0x80, A: 0xff},                     // green
		3: color.RGBA{R: 0xff, G: 0xa5, A: 0xff},            // orange
		4: color.RGBA{R: 0xff, G: 0xff, A: 0xff},            // yellow
		5: color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff},   // pink
		6: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},   // gray
	},
}

// vertexColors resolves one color per vertex. The dataset name is matched
// case-insensitively against the color tables; datasets without a table
// get the default vertex color for every vertex, reported via the second
// return so the caller can log the fallback.
//
// Returns ErrLabelCount if a table is found but labels cannot cover n
// vertices, ErrUnknownLabel for a label outside the table.
// Complexity: O(n).
func vertexColors(datasetName string, labels []int, n int) ([]color.Color, bool, error) {
	table, ok := datasetColors[Dataset(strings.ToLower(datasetName))]
	if !ok {
		cols := make([]color.Color, n)
		for i := range cols {
			cols[i] = defaultVertexColor
		}

		return cols, false, nil
	}

	if len(labels) < n {
		return nil, true, ErrLabelCount
	}
	cols := make([]color.Color, n)
	for i := 0; i < n; i++ {
		c, known := table[labels[i]]
		if !known {
			return nil, true, ErrUnknownLabel
		}
		cols[i] = c
	}

	return cols, true, nil
}
