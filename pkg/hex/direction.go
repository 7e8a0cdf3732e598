package hex

import "strings"

// Direction is one of the six relative movement directions.
type Direction uint8

const (
	Forward Direction = iota
	Left
	Right
	Back
	BackLeft
	BackRight
)

// vectors maps each direction to its axial unit vector.
var vectors = [...]Coord{
	Forward:   {Q: 1, R: 0},
	Left:      {Q: 1, R: -1},
	Right:     {Q: 0, R: 1},
	Back:      {Q: -1, R: 0},
	BackLeft:  {Q: -1, R: 1},
	BackRight: {Q: 0, R: -1},
}

var symbols = [...]string{
	Forward:   "F",
	Left:      "L",
	Right:     "R",
	Back:      "B",
	BackLeft:  "BL",
	BackRight: "BR",
}

// matchOrder lists directions with two-letter symbols first so that "BL"
// is never read as "B" followed by "L".
var matchOrder = [...]Direction{BackLeft, BackRight, Forward, Left, Right, Back}

// Directions returns all six directions in declaration order.
func Directions() []Direction {
	return []Direction{Forward, Left, Right, Back, BackLeft, BackRight}
}

// Valid reports whether d is one of the six declared directions.
func (d Direction) Valid() bool {
	return int(d) < len(vectors)
}

// Vector returns the axial unit vector of d.
// It panics if d is not valid.
func (d Direction) Vector() Coord {
	return vectors[d]
}

// String returns the notation symbol of d ("F", "BL", ...).
func (d Direction) String() string {
	if !d.Valid() {
		return "?"
	}
	return symbols[d]
}

// MatchDirection matches the longest direction symbol at the start of s.
// It returns the direction, the number of bytes consumed and whether a
// symbol matched. Matching is case-sensitive: only uppercase symbols are
// directions.
func MatchDirection(s string) (Direction, int, bool) {
	for _, d := range matchOrder {
		if strings.HasPrefix(s, symbols[d]) {
			return d, len(symbols[d]), true
		}
	}
	return 0, 0, false
}
