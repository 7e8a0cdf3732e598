package geom

import (
	"math"

	"github.com/matzehuels/hexglyph/pkg/hex"
)

const (
	// SceneRotation turns the whole scene 60° counter-clockwise on screen.
	SceneRotation = -math.Pi / 3

	// InnerHexScale is the radius ratio of the charge action's inner hexagon.
	InnerHexScale = 0.60

	// BlockProbe is how far towards the origin, in radii, the block edge
	// probe point lies.
	BlockProbe = 0.9

	// BlockInset pulls block segment endpoints towards the cell centre so
	// the line does not sit exactly on the outline.
	BlockInset = 2.0
)

var sqrt3 = math.Sqrt(3)

// Polygon is a closed polygon given by its vertices.
type Polygon []Point

// AxialToPixel returns the un-rotated centre of cell c at radius size.
func AxialToPixel(c hex.Coord, size float64) Point {
	q, r := float64(c.Q), float64(c.R)
	return Point{
		X: 1.5 * size * q,
		Y: size * sqrt3 * (r + q/2),
	}
}

// Center returns the on-screen centre of cell c: its pixel position turned
// by SceneRotation about the image origin.
func Center(c hex.Coord, size float64) Point {
	return AxialToPixel(c, size).Rotate(SceneRotation, Point{})
}

// Hexagon returns the six vertices of a flat-top hexagon of radius size
// centred on center, starting at angle 0 with 60° spacing, turned by
// SceneRotation about center.
func Hexagon(center Point, size float64) Polygon {
	pts := make(Polygon, 6)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * math.Pi / 3)
		v := Point{center.X + size*cos, center.Y + size*sin}
		pts[i] = v.Rotate(SceneRotation, center)
	}
	return pts
}

// Midpoints returns the midpoint of each edge; edge i runs from vertex i
// to vertex i+1.
func (p Polygon) Midpoints() []Point {
	mids := make([]Point, len(p))
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		mids[i] = Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	}
	return mids
}

// BlockEdge returns the segment drawn for a block action on the cell
// centred at center: the hexagon edge facing origin, with both ends inset
// by BlockInset towards center.
func BlockEdge(center Point, size float64, origin Point) (Point, Point) {
	pts := Hexagon(center, size)
	target := center.Add(origin.Sub(center).Unit().Scale(size * BlockProbe))

	best := 0
	mids := pts.Midpoints()
	for i := 1; i < len(mids); i++ {
		if mids[i].Dist2(target) < mids[best].Dist2(target) {
			best = i
		}
	}

	inset := func(v Point) Point {
		return v.Add(center.Sub(v).Unit().Scale(BlockInset))
	}
	return inset(pts[best]), inset(pts[(best+1)%len(pts)])
}

// OrientationArrow returns the solid triangle drawn on the origin cell. Its
// tip points at the on-screen centre of the forward neighbour, so it turns
// together with the scene.
func OrientationArrow(origin Point, size float64) Polygon {
	heading := Center(hex.Forward.Vector(), 1).Angle()
	tri := Polygon{
		{origin.X + 0.9*size, origin.Y},
		{origin.X + 0.2*size, origin.Y - 0.3*sqrt3*size},
		{origin.X + 0.2*size, origin.Y + 0.3*sqrt3*size},
	}
	for i, v := range tri {
		tri[i] = v.Rotate(heading, origin)
	}
	return tri
}
