// Package render: the rendering dispatcher and the drawing primitive.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/katalvlaran/lvlviz/edgeindex"
	"github.com/katalvlaran/lvlviz/layout"
)

// Draw renders the graph described by idx with the selected tool and
// writes the encoded image to w. nodeLabels provides one class label per
// vertex for datasets with a color table (ignored otherwise); datasetName
// titles the drawing and selects the color table.
//
// Each call is a stateless one-shot render.
//
// Returns ErrIndexNil, ErrNoEdges, ErrUnsupportedTool, ErrLabelCount,
// ErrUnknownLabel, ErrOptionViolation, edgeindex validation sentinels,
// or an encoding error.
func Draw(idx *edgeindex.EdgeIndex, nodeLabels []int, datasetName string, tool Tool, w io.Writer, opts ...Option) error {
	if idx == nil {
		return ErrIndexNil
	}
	if err := idx.Validate(); err != nil {
		return err
	}
	if idx.Len() == 0 {
		return ErrNoEdges
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	switch tool {
	case ToolQuick:
		return drawQuick(idx, datasetName, w, o)
	case ToolStyled:
		return drawStyled(idx, nodeLabels, datasetName, w, o)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedTool, tool)
	}
}

// DrawAdjacency converts a square adjacency matrix (or connectivity mask)
// into an edge index and renders it with Draw.
func DrawAdjacency(m *mat.Dense, nodeLabels []int, datasetName string, tool Tool, w io.Writer, opts ...Option) error {
	idx, err := edgeindex.FromAdjacency(m)
	if err != nil {
		return err
	}

	return Draw(idx, nodeLabels, datasetName, tool, w, opts...)
}

// drawQuick renders with a circular layout and uniform styling.
func drawQuick(idx *edgeindex.EdgeIndex, datasetName string, w io.Writer, o Options) error {
	n := int(idx.MaxID()) + 1
	g, loops := buildGraph(idx, n)
	if loops > 0 {
		o.logger.Debug("skipped self-loops", zap.Int("count", loops))
	}

	edges := sortedEdges(g)
	s := scene{
		title: datasetName,
		pos:   layout.Circular(n),
	}
	for _, e := range edges {
		s.edges = append(s.edges, sceneEdge{
			u:     e.From().ID(),
			v:     e.To().ID(),
			width: DefaultQuickEdgeWidth,
		})
	}
	for i := 0; i < n; i++ {
		s.vertices = append(s.vertices, sceneVertex{
			radius: DefaultQuickVertexRadius,
			color:  defaultVertexColor,
		})
	}

	return s.write(w, o)
}

// drawStyled renders with betweenness-weighted edges, degree-scaled
// vertices, dataset colors and a geodesic layout.
func drawStyled(idx *edgeindex.EdgeIndex, nodeLabels []int, datasetName string, w io.Writer, o Options) error {
	n := int(idx.MaxID()) + 1
	g, loops := buildGraph(idx, n)
	if loops > 0 {
		o.logger.Debug("skipped self-loops", zap.Int("count", loops))
	}
	edges := sortedEdges(g)

	// Edge widths from betweenness: thickness tracks how many shortest
	// paths cross an edge, so bridges stand out.
	bc := network.EdgeBetweenness(g)
	values := make([]float64, len(edges))
	for i, e := range edges {
		values[i] = betweennessOf(bc, e.From().ID(), e.To().ID())
	}
	weights := betweennessWidths(values)

	cols, custom, err := vertexColors(datasetName, nodeLabels, n)
	if err != nil {
		return err
	}
	if !custom {
		o.logger.Info("no color scheme for dataset, using default vertex coloring",
			zap.String("dataset", datasetName))
	}

	pos, err := layout.Geodesic(g)
	switch {
	case errors.Is(err, layout.ErrDegenerate):
		o.logger.Warn("geodesic layout unavailable, falling back to circular",
			zap.String("dataset", datasetName))
		pos = layout.Circular(n)
	case err != nil:
		return err
	}

	o.logger.Info("plotting graph",
		zap.String("dataset", datasetName),
		zap.Int("vertices", n),
		zap.Int("edges", len(edges)))

	s := scene{title: datasetName, pos: pos}
	for i, e := range edges {
		s.edges = append(s.edges, sceneEdge{
			u:     e.From().ID(),
			v:     e.To().ID(),
			width: vg.Length(weights[i]) * o.maxEdgeWidth,
		})
	}
	for i := 0; i < n; i++ {
		radius := vg.Length(o.vertexScale * float64(g.From(int64(i)).Len()))
		if radius < DefaultMinVertexRadius {
			radius = DefaultMinVertexRadius
		}
		s.vertices = append(s.vertices, sceneVertex{radius: radius, color: cols[i]})
	}

	return s.write(w, o)
}

// sortedEdges returns the graph's edges ordered by (from, to) IDs, so
// drawing order — and therefore vector output — is reproducible.
func sortedEdges(g *simple.UndirectedGraph) []graph.Edge {
	edges := graph.EdgesOf(g.Edges())
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From().ID() != edges[j].From().ID() {
			return edges[i].From().ID() < edges[j].From().ID()
		}

		return edges[i].To().ID() < edges[j].To().ID()
	})

	return edges
}

// betweennessOf reads an undirected edge's betweenness regardless of the
// key's endpoint order; absent edges score zero.
func betweennessOf(bc map[[2]int64]float64, u, v int64) float64 {
	if w, ok := bc[[2]int64{u, v}]; ok {
		return w
	}
	if w, ok := bc[[2]int64{v, u}]; ok {
		return w
	}

	return 0
}

// sceneEdge is one drawable edge: endpoint IDs into scene.pos plus width.
type sceneEdge struct {
	u, v  int64
	width vg.Length
}

// sceneVertex is one drawable vertex glyph.
type sceneVertex struct {
	radius vg.Length
	color  color.Color
}

// scene is the assembled style mapping handed to the plot backend.
type scene struct {
	title    string
	pos      []r2.Vec
	edges    []sceneEdge
	vertices []sceneVertex
}

// render assembles the plot: edges as individual lines under a vertex
// scatter with per-point glyph styles, axes hidden, ranges padded by the
// configured margin.
func (s *scene) render(o Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.title
	p.HideAxes()

	for _, e := range s.edges {
		xys := plotter.XYs{
			{X: s.pos[e.u].X, Y: s.pos[e.u].Y},
			{X: s.pos[e.v].X, Y: s.pos[e.v].Y},
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render: build edge line: %w", err)
		}
		line.LineStyle.Width = e.width
		line.LineStyle.Color = edgeColor
		p.Add(line)
	}

	xys := make(plotter.XYs, len(s.pos))
	for i, v := range s.pos {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("render: build vertex scatter: %w", err)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  s.vertices[i].color,
			Radius: s.vertices[i].radius,
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	s.padRanges(p, o)

	return p, nil
}

// padRanges widens the axis ranges so glyphs near the hull are not
// clipped; the pad mirrors the margin's share of the canvas side.
func (s *scene) padRanges(p *plot.Plot, o Options) {
	minX, maxX := s.pos[0].X, s.pos[0].X
	minY, maxY := s.pos[0].Y, s.pos[0].Y
	for _, v := range s.pos {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	ratio := float64(o.margin) / float64(o.side)
	padX := (maxX - minX) * ratio
	padY := (maxY - minY) * ratio
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}

	p.X.Min, p.X.Max = minX-padX, maxX+padX
	p.Y.Min, p.Y.Max = minY-padY, maxY+padY
}

// write renders the scene and encodes it onto a square canvas.
func (s *scene) write(w io.Writer, o Options) error {
	p, err := s.render(o)
	if err != nil {
		return err
	}

	switch o.format {
	case FormatSVG:
		c := vgsvg.New(o.side, o.side)
		p.Draw(draw.New(c))
		if _, err := c.WriteTo(w); err != nil {
			return fmt.Errorf("render: write svg: %w", err)
		}
	default:
		c := vgimg.New(o.side, o.side)
		p.Draw(draw.New(c))
		png := vgimg.PngCanvas{Canvas: c}
		if _, err := png.WriteTo(w); err != nil {
			return fmt.Errorf("render: write png: %w", err)
		}
	}

	return nil
}
