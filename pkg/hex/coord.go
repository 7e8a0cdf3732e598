package hex

import "fmt"

// Coord is an axial hex coordinate. The zero value is the origin.
// Coord is comparable and is used directly as a map key.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Origin is the fixed cell every path starts from.
var Origin = Coord{}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Q: c.Q * k, R: c.R * k}
}

// IsOrigin reports whether c is the origin cell.
func (c Coord) IsOrigin() bool {
	return c == Origin
}

// Less orders coordinates by q, then r.
func (c Coord) Less(o Coord) bool {
	if c.Q != o.Q {
		return c.Q < o.Q
	}
	return c.R < o.R
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}
