// Package sheet lays rendered diagrams out on a single contact sheet, for
// reviewing a card set at a glance.
package sheet

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/hexglyph/pkg/errors"
)

// DefaultGap is the spacing between cells in pixels.
const DefaultGap = 8

// Compose arranges images on a transparent grid with the given number of
// columns, in order. Every cell is sized to the largest image and each
// image is centred in its cell. Columns <= 0 picks a roughly square grid.
func Compose(images []image.Image, columns, gap int) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "contact sheet needs at least one image")
	}
	if gap < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "gap must not be negative, got %d", gap)
	}
	if columns <= 0 {
		columns = squareColumns(len(images))
	}
	if columns > len(images) {
		columns = len(images)
	}
	rows := (len(images) + columns - 1) / columns

	cellW, cellH := 0, 0
	for _, img := range images {
		b := img.Bounds()
		cellW = max(cellW, b.Dx())
		cellH = max(cellH, b.Dy())
	}

	width := columns*cellW + (columns+1)*gap
	height := rows*cellH + (rows+1)*gap
	dst := imaging.New(width, height, color.NRGBA{})

	for i, img := range images {
		col, row := i%columns, i/columns
		b := img.Bounds()
		x := gap + col*(cellW+gap) + (cellW-b.Dx())/2
		y := gap + row*(cellH+gap) + (cellH-b.Dy())/2
		dst = imaging.Overlay(dst, img, image.Pt(x, y), 1.0)
	}
	return dst, nil
}

// Decode reads PNG diagrams produced by the renderer.
func Decode(blobs [][]byte) ([]image.Image, error) {
	images := make([]image.Image, 0, len(blobs))
	for i, b := range blobs {
		img, err := imaging.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode image %d", i)
		}
		images = append(images, img)
	}
	return images, nil
}

// Encode writes sheet as PNG.
func Encode(w io.Writer, sheet image.Image) error {
	return imaging.Encode(w, sheet, imaging.PNG)
}

func squareColumns(n int) int {
	c := 1
	for c*c < n {
		c++
	}
	return c
}
