package layout

import (
	"fmt"
	"image/color"
	"math"

	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/geom"
	"github.com/matzehuels/hexglyph/pkg/hex"
	"github.com/matzehuels/hexglyph/pkg/notation"
)

const (
	// DefaultSize is the default hex radius in pixels.
	DefaultSize = 46.0

	// DefaultPadding is the default margin around the tight bounds.
	DefaultPadding = 1

	// DefaultFontScale is the default label size relative to the hex radius.
	DefaultFontScale = 0.9
)

// OpKind identifies a paint operation.
type OpKind int

const (
	OpPolygon OpKind = iota
	OpLine
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpPolygon:
		return "polygon"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one paint operation in canvas coordinates.
//
//   - OpPolygon fills Points with Fill (if set) and outlines with Stroke (if set).
//   - OpLine strokes Points[0]-Points[1] with Stroke at Width.
//   - OpText draws Text centred on Points[0] in Fill.
type Op struct {
	Kind   OpKind
	Points []geom.Point
	Fill   color.Color
	Stroke color.Color
	Width  float64
	Text   string
}

// Options configures layout.
type Options struct {
	Size      float64 // hex radius in pixels
	Padding   int     // margin on every side, in pixels
	FontScale float64 // label size as a fraction of Size
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Size: DefaultSize, Padding: DefaultPadding, FontScale: DefaultFontScale}
}

// SetDefaults fills zero Size and FontScale. Padding is left alone since
// zero is a legitimate margin.
func (o *Options) SetDefaults() {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.FontScale == 0 {
		o.FontScale = DefaultFontScale
	}
}

// Validate rejects unusable option values.
func (o Options) Validate() error {
	if o.Size <= 0 || math.IsNaN(o.Size) || math.IsInf(o.Size, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "size must be a positive number, got %v", o.Size)
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "padding must not be negative, got %d", o.Padding)
	}
	if o.FontScale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "font scale must be positive, got %v", o.FontScale)
	}
	return nil
}

// Scene is a fully laid out diagram.
type Scene struct {
	Width, Height int
	FontSize      float64 // label size in pixels
	Bounds        geom.Bounds
	Offset        geom.Point // added to every pixel position before rounding
	Placeholders  []hex.Coord
	Ops           []Op
}

// Compute lays out placements. Options are defaulted and validated.
func Compute(p *notation.Placements, opts Options) (*Scene, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	size := opts.Size

	placeholders := p.Placeholders()
	origin := geom.Center(hex.Origin, size)

	var shapes []Op
	bounds := geom.EmptyBounds()
	add := func(op Op, bound []geom.Point) {
		shapes = append(shapes, op)
		bounds = bounds.Extend(bound...)
	}

	originHex := geom.Hexagon(origin, size)
	add(Op{Kind: OpPolygon, Points: originHex, Fill: White, Stroke: Black}, originHex)

	arrow := geom.OrientationArrow(origin, size)
	add(Op{Kind: OpPolygon, Points: arrow, Fill: Black}, arrow)

	for _, c := range placeholders {
		pts := geom.Hexagon(geom.Center(c, size), size)
		add(Op{Kind: OpPolygon, Points: pts, Fill: HalfWhite, Stroke: Black}, pts)
	}

	for _, tok := range p.Tokens() {
		style, ok := StyleFor(tok.Action)
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "no style for action %q", tok.Action.Letter())
		}
		center := geom.Center(tok.Coord, size)

		if style.Fill != nil {
			pts := geom.Hexagon(center, size)
			add(Op{Kind: OpPolygon, Points: pts, Fill: style.Fill, Stroke: Black}, pts)
		}
		if style.Inner != nil {
			inner := geom.Hexagon(center, size*geom.InnerHexScale)
			add(Op{Kind: OpPolygon, Points: inner, Fill: style.Inner, Stroke: Black}, inner)
		}
		if style.Label != "" {
			// Labels sit inside the cell hexagon, which is already bounded.
			add(Op{Kind: OpText, Points: []geom.Point{center}, Fill: Black, Text: style.Label}, nil)
		}
		if style.Edge != nil {
			a, b := geom.BlockEdge(center, size, origin)
			add(Op{Kind: OpLine, Points: []geom.Point{a, b}, Stroke: style.Edge, Width: BlockLineWidth}, []geom.Point{a, b})
		}
	}

	pad := float64(opts.Padding)
	scene := &Scene{
		Width:        int(math.Ceil(bounds.Width())) + 2*opts.Padding,
		Height:       int(math.Ceil(bounds.Height())) + 2*opts.Padding,
		FontSize:     size * opts.FontScale,
		Bounds:       bounds,
		Offset:       geom.Point{X: -bounds.MinX + pad, Y: -bounds.MinY + pad},
		Placeholders: placeholders,
		Ops:          make([]Op, len(shapes)),
	}
	for i, op := range shapes {
		op.Points = scene.toCanvas(op.Points)
		scene.Ops[i] = op
	}
	return scene, nil
}

// toCanvas translates points by the scene offset and rounds them to whole
// pixels.
func (s *Scene) toCanvas(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.Point{
			X: math.Round(p.X + s.Offset.X),
			Y: math.Round(p.Y + s.Offset.Y),
		}
	}
	return out
}
