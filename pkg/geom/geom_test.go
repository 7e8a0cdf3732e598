package geom

import (
	"math"
	"testing"

	"github.com/matzehuels/hexglyph/pkg/hex"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearPoint(a, b Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestAxialToPixel(t *testing.T) {
	tests := []struct {
		name string
		c    hex.Coord
		size float64
		want Point
	}{
		{"origin", hex.Coord{}, 46, Point{0, 0}},
		{"forward", hex.Coord{Q: 1}, 10, Point{15, 5 * math.Sqrt(3)}},
		{"right", hex.Coord{R: 1}, 10, Point{0, 10 * math.Sqrt(3)}},
		{"back left", hex.Coord{Q: -1, R: 1}, 2, Point{-3, math.Sqrt(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AxialToPixel(tt.c, tt.size); !nearPoint(got, tt.want) {
				t.Errorf("AxialToPixel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenterRotation(t *testing.T) {
	// Forward sits at +30° before rotation and -30° after.
	got := Center(hex.Coord{Q: 1}, 1).Angle()
	if want := -math.Pi / 6; !near(got, want) {
		t.Errorf("forward angle = %v, want %v", got, want)
	}

	// Neighbours stay √3·size apart.
	for _, d := range hex.Directions() {
		c := Center(d.Vector(), 46)
		if l := c.Len(); !near(l, 46*math.Sqrt(3)) {
			t.Errorf("%s: distance = %v, want %v", d, l, 46*math.Sqrt(3))
		}
	}
}

func TestRotate(t *testing.T) {
	p := Point{1, 0}.Rotate(math.Pi/2, Point{})
	if !nearPoint(p, Point{0, 1}) {
		t.Errorf("Rotate(90°) = %v, want (0,1)", p)
	}
	q := Point{2, 1}.Rotate(math.Pi, Point{1, 1})
	if !nearPoint(q, Point{0, 1}) {
		t.Errorf("Rotate(180° about (1,1)) = %v, want (0,1)", q)
	}
}

func TestHexagon(t *testing.T) {
	c := Point{10, 20}
	pts := Hexagon(c, 46)
	if len(pts) != 6 {
		t.Fatalf("len = %d, want 6", len(pts))
	}
	for i, v := range pts {
		if d := v.Sub(c).Len(); !near(d, 46) {
			t.Errorf("vertex %d radius = %v, want 46", i, d)
		}
		want := float64(i)*math.Pi/3 + SceneRotation
		got := v.Sub(c).Angle()
		diff := math.Remainder(got-want, 2*math.Pi)
		if !near(diff, 0) {
			t.Errorf("vertex %d angle = %v, want %v", i, got, want)
		}
	}
}

func TestNeighbourHexagonsShareEdge(t *testing.T) {
	const size = 46
	origin := Hexagon(Center(hex.Origin, size), size)
	for _, d := range hex.Directions() {
		other := Hexagon(Center(d.Vector(), size), size)
		shared := 0
		for _, a := range origin {
			for _, b := range other {
				if math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6 {
					shared++
				}
			}
		}
		if shared != 2 {
			t.Errorf("%s: shared vertices = %d, want 2", d, shared)
		}
	}
}

func TestInnerHexagon(t *testing.T) {
	c := Point{5, 5}
	inner := Hexagon(c, 46*InnerHexScale)
	for _, v := range inner {
		if d := v.Sub(c).Len(); !near(d, 46*0.6) {
			t.Errorf("inner radius = %v, want %v", d, 46*0.6)
		}
	}
}

func TestBlockEdgeFacesOrigin(t *testing.T) {
	const size = 46.0
	origin := Center(hex.Origin, size)

	for _, d := range hex.Directions() {
		t.Run(d.String(), func(t *testing.T) {
			c := Center(d.Vector(), size)
			a, b := BlockEdge(c, size, origin)

			mid := Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
			toOrigin := origin.Sub(c).Angle()
			if diff := math.Remainder(mid.Sub(c).Angle()-toOrigin, 2*math.Pi); math.Abs(diff) > 1e-6 {
				t.Errorf("edge midpoint direction off by %v rad", diff)
			}

			for _, v := range []Point{a, b} {
				if r := v.Sub(c).Len(); math.Abs(r-(size-BlockInset)) > 1e-6 {
					t.Errorf("endpoint radius = %v, want %v", r, size-BlockInset)
				}
			}
			if l := a.Sub(b).Len(); math.Abs(l-(size-BlockInset)) > 1e-6 {
				t.Errorf("segment length = %v, want %v", l, size-BlockInset)
			}
		})
	}
}

func TestBlockEdgeFarCell(t *testing.T) {
	const size = 46.0
	origin := Center(hex.Origin, size)
	c := Center(hex.Coord{Q: 3, R: -1}, size)
	a, b := BlockEdge(c, size, origin)
	mid := Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	if mid.Sub(origin).Len() >= c.Sub(origin).Len() {
		t.Error("block edge should lie on the side facing the origin")
	}
}

func TestOrientationArrow(t *testing.T) {
	const size = 46.0
	o := Point{100, 100}
	tri := OrientationArrow(o, size)
	if len(tri) != 3 {
		t.Fatalf("len = %d, want 3", len(tri))
	}
	tip := tri[0].Sub(o)
	if !near(tip.Len(), 0.9*size) {
		t.Errorf("tip distance = %v, want %v", tip.Len(), 0.9*size)
	}
	if want := -math.Pi / 6; !near(tip.Angle(), want) {
		t.Errorf("tip angle = %v, want %v", tip.Angle(), want)
	}
	// base is symmetric about the tip direction
	if !near(tri[1].Sub(o).Len(), tri[2].Sub(o).Len()) {
		t.Error("arrow base is not symmetric")
	}
}

func TestMidpoints(t *testing.T) {
	sq := Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	want := []Point{{1, 0}, {2, 1}, {1, 2}, {0, 1}}
	got := sq.Midpoints()
	for i := range want {
		if !nearPoint(got[i], want[i]) {
			t.Errorf("Midpoints()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBounds(t *testing.T) {
	b := EmptyBounds()
	if !b.IsEmpty() {
		t.Error("EmptyBounds() should be empty")
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Error("empty bounds should have zero size")
	}

	b = b.Extend(Point{1, 2})
	if b.IsEmpty() {
		t.Error("bounds with one point should not be empty")
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("single point size = %vx%v, want 0x0", b.Width(), b.Height())
	}

	b = b.Extend(Point{-3, 5}, Point{4, -1})
	want := Bounds{MinX: -3, MinY: -1, MaxX: 4, MaxY: 5}
	if b != want {
		t.Errorf("Extend() = %+v, want %+v", b, want)
	}
	if b.Width() != 7 || b.Height() != 6 {
		t.Errorf("size = %vx%v, want 7x6", b.Width(), b.Height())
	}
	if !b.Contains(Point{0, 0}) || b.Contains(Point{5, 0}) {
		t.Error("Contains() wrong")
	}
}
