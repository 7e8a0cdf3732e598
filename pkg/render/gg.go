package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/hexglyph/pkg/fonts"
	"github.com/matzehuels/hexglyph/pkg/geom"
)

// outlineWidth is the stroke width of polygon outlines.
const outlineWidth = 1.0

// GG is a Backend drawing with fogleman/gg.
type GG struct {
	// Font is the label typeface. Nil uses the fallback face.
	Font *fonts.Font
}

// NewCanvas implements Backend.
func (b GG) NewCanvas(width, height int, fontSize float64) (Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	f := b.Font
	if f == nil {
		f = fonts.Load("")
	}
	face, err := f.Face(fontSize)
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", f.Name, err)
	}

	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	dc.SetLineCap(gg.LineCapButt)
	return &ggCanvas{dc: dc}, nil
}

type ggCanvas struct {
	dc *gg.Context
}

func (c *ggCanvas) Polygon(pts []geom.Point, fill, stroke color.Color) {
	if len(pts) == 0 {
		return
	}
	c.path(pts)
	if fill != nil {
		c.dc.SetColor(fill)
		c.dc.FillPreserve()
	}
	if stroke != nil {
		c.dc.SetColor(stroke)
		c.dc.SetLineWidth(outlineWidth)
		c.dc.StrokePreserve()
	}
	c.dc.ClearPath()
}

func (c *ggCanvas) Line(a, b geom.Point, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.dc.Stroke()
}

func (c *ggCanvas) Text(s string, at geom.Point, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, at.X, at.Y, 0.5, 0.5)
}

func (c *ggCanvas) Image() image.Image { return c.dc.Image() }

func (c *ggCanvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *ggCanvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

func (c *ggCanvas) path(pts []geom.Point) {
	c.dc.NewSubPath()
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
}
