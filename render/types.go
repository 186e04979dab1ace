// Package render: tool selector, output format, and sentinel errors.
package render

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rendering.
var (
	// ErrUnsupportedTool is returned for a tool selector outside the
	// supported variants.
	ErrUnsupportedTool = errors.New("render: unsupported visualization tool")

	// ErrIndexNil is returned when the edge index is nil.
	ErrIndexNil = errors.New("render: edge index is nil")

	// ErrNoEdges is returned when the edge index holds no edges.
	ErrNoEdges = errors.New("render: edge index has no edges")

	// ErrLabelCount is returned when a color-mapped dataset supplies
	// fewer labels than there are vertices.
	ErrLabelCount = errors.New("render: label count below vertex count")

	// ErrUnknownLabel is returned when a label has no entry in the
	// dataset's color table.
	ErrUnknownLabel = errors.New("render: label not in dataset color table")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Tool selects the rendering variant.
type Tool uint8

// Supported rendering tools.
const (
	// ToolQuick draws with a circular layout and uniform styling.
	ToolQuick Tool = iota

	// ToolStyled draws with betweenness-weighted edges, degree-scaled
	// vertices, dataset colors and a geodesic layout.
	ToolStyled
)

// String returns the tool's command-line name.
func (t Tool) String() string {
	switch t {
	case ToolQuick:
		return "quick"
	case ToolStyled:
		return "styled"
	default:
		return fmt.Sprintf("tool(%d)", uint8(t))
	}
}

// ParseTool maps a tool name ("quick" or "styled", case-insensitive)
// to its Tool value. Unknown names yield ErrUnsupportedTool.
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quick":
		return ToolQuick, nil
	case "styled":
		return ToolStyled, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTool, name)
	}
}

// Format selects the image encoding Draw writes.
type Format string

// Supported output formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)
