// Package degree: distribution plotting over gonum/plot.
package degree

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Sentinel errors for plotting.
var (
	// ErrStatsNil is returned when Plot receives a nil *Stats.
	ErrStatsNil = errors.New("degree: stats is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("degree: invalid option supplied")
)

// Format selects the image encoding Plot writes.
type Format string

// Supported output formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Defaults for the stacked distribution figure.
const (
	// DefaultWidth is the figure width.
	DefaultWidth = 8 * vg.Inch

	// DefaultHeight is the figure height (three stacked charts).
	DefaultHeight = 12 * vg.Inch

	// DefaultFormat is the image encoding used when none is requested.
	DefaultFormat = FormatPNG

	// histTickStep spaces the histogram's X-axis ticks.
	histTickStep = 5

	// tilePad separates the stacked charts.
	tilePad = vg.Millimeter * 4
)

// Chart colors: in-degree red, out-degree green, histogram blue.
var (
	colorIn   = color.RGBA{R: 0xcc, A: 0xff}
	colorOut  = color.RGBA{G: 0x99, A: 0xff}
	colorHist = color.RGBA{B: 0xcc, A: 0xff}
)

// Option configures Plot via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Plot runs.
type Option func(*Options)

// Options holds plotting parameters.
type Options struct {
	width  vg.Length
	height vg.Length
	format Format

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default figure size and format.
func DefaultOptions() Options {
	return Options{
		width:  DefaultWidth,
		height: DefaultHeight,
		format: DefaultFormat,
	}
}

// WithSize sets the figure dimensions. Non-positive values are an
// option violation.
func WithSize(width, height vg.Length) Option {
	return func(o *Options) {
		if width <= 0 || height <= 0 {
			o.err = fmt.Errorf("%w: non-positive size", ErrOptionViolation)
			return
		}
		o.width, o.height = width, height
	}
}

// WithFormat selects the image encoding (FormatPNG or FormatSVG).
func WithFormat(f Format) Option {
	return func(o *Options) {
		if f != FormatPNG && f != FormatSVG {
			o.err = fmt.Errorf("%w: unknown format %q", ErrOptionViolation, f)
			return
		}
		o.format = f
	}
}

// Plot renders three stacked charts from s — in-degree per node ID,
// out-degree per node ID, and the out-degree frequency histogram — and
// writes the encoded image to w. datasetName labels the histogram title.
//
// Returns ErrStatsNil, ErrOptionViolation, or an encoding error.
func Plot(s *Stats, datasetName string, w io.Writer, opts ...Option) error {
	if s == nil {
		return ErrStatsNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	inPlot, err := linePlot(s.In, colorIn,
		"Input degree for different node ids", "node id", "in-degree count")
	if err != nil {
		return err
	}
	outPlot, err := linePlot(s.Out, colorOut,
		"Out degree for different node ids", "node id", "out-degree count")
	if err != nil {
		return err
	}
	histTitle := fmt.Sprintf("Node out degree distribution for %s dataset", datasetName)
	histPlot, err := linePlot(s.Hist, colorHist,
		histTitle, "node degree", "# nodes for the given out degree")
	if err != nil {
		return err
	}
	histPlot.Add(plotter.NewGrid())
	histPlot.X.Tick.Marker = plot.ConstantTicks(stepTicks(len(s.Hist), histTickStep))

	rows := [][]*plot.Plot{{inPlot}, {outPlot}, {histPlot}}

	return writeAligned(rows, o, w)
}

// linePlot builds one labeled line chart from per-index integer counts.
func linePlot(values []int, c color.Color, title, xlabel, ylabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	line, err := plotter.NewLine(intsToXYs(values))
	if err != nil {
		return nil, fmt.Errorf("degree: build line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = c
	p.Add(line)

	return p, nil
}

// intsToXYs maps a dense count slice onto (index, count) points.
func intsToXYs(values []int) plotter.XYs {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: float64(v)}
	}

	return xys
}

// stepTicks produces major ticks at 0, step, 2*step, ... up to n-1.
func stepTicks(n, step int) []plot.Tick {
	var ticks []plot.Tick
	for v := 0; v < n; v += step {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: fmt.Sprint(v)})
	}

	return ticks
}

// writeAligned tiles the plots into one canvas and encodes it to w.
func writeAligned(rows [][]*plot.Plot, o Options, w io.Writer) error {
	tiles := draw.Tiles{
		Rows: len(rows),
		Cols: 1,
		PadY: tilePad,
		PadX: tilePad,
	}

	switch o.format {
	case FormatSVG:
		c := vgsvg.New(o.width, o.height)
		drawTiled(rows, tiles, draw.New(c))
		if _, err := c.WriteTo(w); err != nil {
			return fmt.Errorf("degree: write svg: %w", err)
		}
	default:
		c := vgimg.New(o.width, o.height)
		drawTiled(rows, tiles, draw.New(c))
		png := vgimg.PngCanvas{Canvas: c}
		if _, err := png.WriteTo(w); err != nil {
			return fmt.Errorf("degree: write png: %w", err)
		}
	}

	return nil
}

// drawTiled draws each plot into its aligned tile.
func drawTiled(rows [][]*plot.Plot, tiles draw.Tiles, dc draw.Canvas) {
	canvases := plot.Align(rows, tiles, dc)
	for i := range rows {
		for j := range rows[i] {
			if rows[i][j] != nil {
				rows[i][j].Draw(canvases[i][j])
			}
		}
	}
}
