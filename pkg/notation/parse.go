package notation

import (
	"strings"

	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/hex"
)

// Separator splits a spec into tokens.
const Separator = "-"

// Token is one parsed path+action unit.
type Token struct {
	Raw    string      `json:"raw"`
	Steps  []hex.Step  `json:"steps"`
	Cells  []hex.Coord `json:"cells"` // every cell entered, ending at Coord
	Coord  hex.Coord   `json:"coord"`
	Action Action      `json:"action"`
}

// Parser parses specs. The zero value applies no cell limit.
type Parser struct {
	// MaxCells bounds the number of unit steps in a single token.
	// Zero disables the check.
	MaxCells int
}

// Parse parses spec with no cell limit.
func Parse(spec string) ([]Token, error) {
	return Parser{}.Parse(spec)
}

// Valid reports whether spec parses with no cell limit.
// It never panics and is intended for filtering batch candidates.
func Valid(spec string) bool {
	_, err := Parse(spec)
	return err == nil
}

// Parse splits spec on [Separator], drops empty pieces and parses each
// remaining token in order.
func (p Parser) Parse(spec string) ([]Token, error) {
	var tokens []Token
	for _, piece := range strings.Split(spec, Separator) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		tok, err := p.parseToken(piece, spec)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedToken, "spec %q contains no tokens", spec)
	}
	return tokens, nil
}

// Valid reports whether spec parses under p.
func (p Parser) Valid(spec string) bool {
	_, err := p.Parse(spec)
	return err == nil
}

func (p Parser) parseToken(tok, spec string) (Token, error) {
	idx := -1
	for i := 0; i < len(tok); i++ {
		if _, ok := ParseAction(tok[i]); ok {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Token{}, errors.New(errors.ErrCodeMalformedToken,
			"no action letter in token %q of spec %q", tok, spec)
	}
	if idx != len(tok)-1 {
		return Token{}, errors.New(errors.ErrCodeMalformedToken,
			"unexpected %q after action in token %q of spec %q", tok[idx+1:], tok, spec)
	}

	steps, err := hex.ParsePath(tok[:idx])
	if err != nil {
		return Token{}, inSpec(err, tok, spec)
	}
	walk, err := hex.WalkSteps(steps, p.MaxCells)
	if err != nil {
		return Token{}, inSpec(err, tok, spec)
	}
	if walk.End.IsOrigin() {
		return Token{}, errors.New(errors.ErrCodeOriginTarget,
			"token %q of spec %q ends on the origin", tok, spec)
	}

	return Token{
		Raw:    tok,
		Steps:  walk.Steps,
		Cells:  walk.Cells,
		Coord:  walk.End,
		Action: Action(tok[idx]),
	}, nil
}

// inSpec rewrites a path error so its message names the token and spec.
func inSpec(err error, tok, spec string) error {
	code := errors.GetCode(err)
	if code == "" {
		return err
	}
	return errors.New(code, "%s (token %q of spec %q)", errors.UserMessage(err), tok, spec)
}
