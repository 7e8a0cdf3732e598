package layout

import (
	"image/color"

	"github.com/matzehuels/hexglyph/pkg/notation"
)

// Palette colors.
var (
	Red       = color.RGBA{231, 76, 60, 255}
	Green     = color.RGBA{46, 204, 113, 255}
	Blue      = color.RGBA{52, 152, 219, 255}
	Gold      = color.RGBA{241, 196, 15, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	White     = color.RGBA{255, 255, 255, 255}
	HalfWhite = color.NRGBA{255, 255, 255, 128}
)

// BlockLineWidth is the stroke width of a block segment, in pixels.
const BlockLineWidth = 10

// Style describes how a requested cell is painted.
type Style struct {
	Fill  color.Color // hexagon fill; nil draws no hexagon
	Inner color.Color // fill of the inner hexagon; nil for none
	Edge  color.Color // color of the block segment; nil for none
	Label string      // text centred on the cell; empty for none
}

var styles = map[notation.Action]Style{
	notation.Attack: {Fill: Red, Label: "a"},
	notation.Move:   {Fill: Green, Label: "m"},
	notation.Jump:   {Fill: Blue, Label: "j"},
	notation.Charge: {Fill: Red, Inner: Green, Label: "c"},
	notation.Block:  {Edge: Gold},
}

// StyleFor returns the style of action a.
func StyleFor(a notation.Action) (Style, bool) {
	s, ok := styles[a]
	return s, ok
}
