// Package export renders mind maps to image formats.
//
// PNG rendering draws the scene directly with a 2D canvas. SVG goes
// through a Graphviz DOT intermediate so the output stays a scalable
// vector document.
package export

import (
	"errors"

	"github.com/mindloom/mindloom/pkg/mindmap"
)

// ErrEmptyMap is returned when there is nothing to render.
var ErrEmptyMap = errors.New("nothing to export")

// Padding in scene units added around the content on every side.
const padding = 40.0

// Options configures a PNG export.
type Options struct {
	// Width and Height are the output image dimensions in pixels.
	Width  int
	Height int

	// Transparent skips the background fill.
	Transparent bool
}

// Size holds the natural pixel dimensions of a scene.
type Size struct {
	Width  int
	Height int
}

// SceneSize computes the natural export size of a mind map: the node
// bounding box plus padding, never smaller than a single node's footprint.
func SceneSize(m *mindmap.MindMap) (Size, error) {
	minX, minY, maxX, maxY, ok := m.Bounds()
	if !ok {
		return Size{}, ErrEmptyMap
	}

	w := maxX - minX + 2*padding + nodeWidth
	h := maxY - minY + 2*padding + nodeHeight
	return Size{Width: int(w), Height: int(h)}, nil
}
