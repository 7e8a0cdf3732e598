package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/hexglyph/pkg/layout"
)

// Paint creates a canvas sized for scene and paints its operations in order.
func Paint(scene *layout.Scene, b Backend) (Canvas, error) {
	c, err := b.NewCanvas(scene.Width, scene.Height, scene.FontSize)
	if err != nil {
		return nil, err
	}
	for i, op := range scene.Ops {
		if err := apply(c, op); err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
	}
	return c, nil
}

// PNG paints scene and returns the encoded image.
func PNG(scene *layout.Scene, b Backend) ([]byte, error) {
	c, err := Paint(scene, b)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func apply(c Canvas, op layout.Op) error {
	switch op.Kind {
	case layout.OpPolygon:
		c.Polygon(op.Points, op.Fill, op.Stroke)
	case layout.OpLine:
		if len(op.Points) != 2 {
			return fmt.Errorf("line needs 2 points, got %d", len(op.Points))
		}
		c.Line(op.Points[0], op.Points[1], op.Width, op.Stroke)
	case layout.OpText:
		if len(op.Points) != 1 {
			return fmt.Errorf("text needs 1 anchor, got %d", len(op.Points))
		}
		c.Text(op.Text, op.Points[0], op.Fill)
	default:
		return fmt.Errorf("unknown op %v", op.Kind)
	}
	return nil
}
