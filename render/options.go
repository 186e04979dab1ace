// Package render: functional options and documented defaults.
package render

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultCanvasSide is the square canvas edge length in points.
	DefaultCanvasSide vg.Length = 800

	// DefaultMargin is the blank border kept around the drawing.
	DefaultMargin vg.Length = 35

	// DefaultMaxEdgeWidth is the stroke width of the strongest edge in a
	// styled render; weaker edges scale down from it.
	DefaultMaxEdgeWidth vg.Length = 6

	// DefaultQuickEdgeWidth is the uniform stroke width of quick renders.
	DefaultQuickEdgeWidth vg.Length = 1

	// DefaultVertexScale converts a vertex degree into a glyph radius in
	// points: radius = scale × degree. 0.5 draws hubs at half their degree.
	DefaultVertexScale = 0.5

	// DefaultMinVertexRadius keeps low-degree vertices visible.
	DefaultMinVertexRadius vg.Length = 1.5

	// DefaultQuickVertexRadius is the uniform glyph radius of quick renders.
	DefaultQuickVertexRadius vg.Length = 3

	// DefaultFormat is the image encoding used when none is requested.
	DefaultFormat = FormatPNG
)

// Option configures Draw via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Draw runs.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	logger       *zap.Logger
	side         vg.Length
	margin       vg.Length
	maxEdgeWidth vg.Length
	vertexScale  float64
	format       Format

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op logger and the documented
// default canvas, margin, widths, scale and format.
func DefaultOptions() Options {
	return Options{
		logger:       zap.NewNop(),
		side:         DefaultCanvasSide,
		margin:       DefaultMargin,
		maxEdgeWidth: DefaultMaxEdgeWidth,
		vertexScale:  DefaultVertexScale,
		format:       DefaultFormat,
	}
}

// WithLogger routes informational render messages to l.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCanvasSide sets the square canvas edge length.
func WithCanvasSide(side vg.Length) Option {
	return func(o *Options) {
		if side <= 0 {
			o.err = fmt.Errorf("%w: non-positive canvas side", ErrOptionViolation)
			return
		}
		o.side = side
	}
}

// WithMargin sets the blank border around the drawing.
func WithMargin(margin vg.Length) Option {
	return func(o *Options) {
		if margin < 0 {
			o.err = fmt.Errorf("%w: negative margin", ErrOptionViolation)
			return
		}
		o.margin = margin
	}
}

// WithMaxEdgeWidth sets the stroke width of the strongest styled edge.
func WithMaxEdgeWidth(width vg.Length) Option {
	return func(o *Options) {
		if width <= 0 {
			o.err = fmt.Errorf("%w: non-positive edge width", ErrOptionViolation)
			return
		}
		o.maxEdgeWidth = width
	}
}

// WithVertexScale sets the degree→radius factor for styled vertices.
func WithVertexScale(scale float64) Option {
	return func(o *Options) {
		if scale <= 0 {
			o.err = fmt.Errorf("%w: non-positive vertex scale", ErrOptionViolation)
			return
		}
		o.vertexScale = scale
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
