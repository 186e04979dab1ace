package degree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlviz/degree"
	"github.com/katalvlaran/lvlviz/edgeindex"
)

// pngMagic is the first eight bytes of every PNG stream.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func triangleStats(t *testing.T) *degree.Stats {
	t.Helper()
	idx := &edgeindex.EdgeIndex{Src: []int64{0, 1, 2}, Dst: []int64{1, 2, 0}}
	s, err := degree.Compute(idx)
	require.NoError(t, err)

	return s
}

// TestPlot_PNG renders the default figure and checks the PNG signature.
func TestPlot_PNG(t *testing.T) {
	var buf bytes.Buffer
	err := degree.Plot(triangleStats(t), "triangle", &buf)
	require.NoError(t, err)
	require.Greater(t, buf.Len(), len(pngMagic))
	require.Equal(t, pngMagic, buf.Bytes()[:len(pngMagic)])
}

// TestPlot_SVG renders an SVG figure carrying the dataset name.
func TestPlot_SVG(t *testing.T) {
	var buf bytes.Buffer
	err := degree.Plot(triangleStats(t), "triangle", &buf,
		degree.WithFormat(degree.FormatSVG),
		degree.WithSize(6*vg.Inch, 9*vg.Inch))
	require.NoError(t, err)
	out := buf.String()
	require.True(t, strings.Contains(out, "<svg"), "missing svg root element")
	require.True(t, strings.Contains(out, "triangle"), "dataset name not in figure")
}

// TestPlot_Errors covers nil stats and invalid options.
func TestPlot_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := degree.Plot(nil, "x", &buf)
	require.ErrorIs(t, err, degree.ErrStatsNil)

	err = degree.Plot(triangleStats(t), "x", &buf, degree.WithSize(0, 0))
	require.ErrorIs(t, err, degree.ErrOptionViolation)

	err = degree.Plot(triangleStats(t), "x", &buf, degree.WithFormat("gif"))
	require.ErrorIs(t, err, degree.ErrOptionViolation)
}
