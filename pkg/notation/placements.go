package notation

import (
	"sort"

	"github.com/matzehuels/hexglyph/pkg/hex"
)

// Placements maps requested cells to their tokens in first-insertion order.
type Placements struct {
	order  []hex.Coord
	tokens map[hex.Coord]Token
}

// NewPlacements indexes tokens by target cell. A later token reaching the
// same cell replaces the earlier one (last token wins) but the cell keeps
// the position where it was first requested.
func NewPlacements(tokens []Token) *Placements {
	p := &Placements{tokens: make(map[hex.Coord]Token, len(tokens))}
	for _, t := range tokens {
		if _, ok := p.tokens[t.Coord]; !ok {
			p.order = append(p.order, t.Coord)
		}
		p.tokens[t.Coord] = t
	}
	return p
}

// Len returns the number of distinct requested cells.
func (p *Placements) Len() int { return len(p.order) }

// Get returns the token requested at c.
func (p *Placements) Get(c hex.Coord) (Token, bool) {
	t, ok := p.tokens[c]
	return t, ok
}

// Has reports whether c is a requested cell.
func (p *Placements) Has(c hex.Coord) bool {
	_, ok := p.tokens[c]
	return ok
}

// Coords returns requested cells in iteration order.
func (p *Placements) Coords() []hex.Coord {
	return append([]hex.Coord(nil), p.order...)
}

// Tokens returns the surviving tokens in iteration order.
func (p *Placements) Tokens() []Token {
	out := make([]Token, len(p.order))
	for i, c := range p.order {
		out[i] = p.tokens[c]
	}
	return out
}

// Placeholders returns the cells crossed by any surviving token's path
// that are neither requested nor the origin, each once, sorted by (q, r).
// A token's own final cell is never one of its placeholders.
func (p *Placements) Placeholders() []hex.Coord {
	seen := make(map[hex.Coord]struct{})
	var out []hex.Coord
	for _, c := range p.order {
		cells := p.tokens[c].Cells
		if len(cells) == 0 {
			continue
		}
		for _, cell := range cells[:len(cells)-1] {
			if cell.IsOrigin() || p.Has(cell) {
				continue
			}
			if _, dup := seen[cell]; dup {
				continue
			}
			seen[cell] = struct{}{}
			out = append(out, cell)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
