package render

import (
	"image"
	"image/color"
	"io"

	"github.com/matzehuels/hexglyph/pkg/geom"
)

// Canvas is an RGBA drawing surface with a transparent background.
type Canvas interface {
	// Polygon fills pts with fill and outlines it with stroke. Either color
	// may be nil to skip that part.
	Polygon(pts []geom.Point, fill, stroke color.Color)

	// Line strokes the segment a-b with the given width and color.
	Line(a, b geom.Point, width float64, c color.Color)

	// Text draws s with its visual centre at at.
	Text(s string, at geom.Point, c color.Color)

	// Image returns the canvas pixels.
	Image() image.Image

	// EncodePNG writes the canvas as PNG to w.
	EncodePNG(w io.Writer) error

	// SavePNG writes the canvas as PNG to the named file.
	SavePNG(path string) error
}

// Backend creates canvases.
type Backend interface {
	// NewCanvas returns a transparent width×height canvas whose text is set
	// at fontSize pixels.
	NewCanvas(width, height int, fontSize float64) (Canvas, error)
}
