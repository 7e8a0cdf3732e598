package hex

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/matzehuels/hexglyph/pkg/errors"
)

// Step moves Distance cells in direction Dir. Distance is at least 1.
type Step struct {
	Dir      Direction `json:"dir"`
	Distance int       `json:"distance"`
}

func (s Step) String() string {
	return s.Dir.String() + strconv.Itoa(s.Distance)
}

// Walk is the result of integrating a step list from the origin.
type Walk struct {
	Steps []Step  // steps as parsed
	Cells []Coord // every cell entered, one per unit step, in order
	End   Coord   // net coordinate reached
}

// ParsePath reads a path substring into an ordered step list.
//
//   - An empty path is a single forward step.
//   - Leading digits with no direction are a forward step of that distance.
//   - Otherwise each step is a direction symbol followed by optional digits
//     (default distance 1). Two-letter symbols win over one-letter ones.
//
// Unknown characters yield ErrCodeInvalidDirection; a zero or unparseable
// distance yields ErrCodeInvalidDistance.
func ParsePath(path string) ([]Step, error) {
	if path == "" {
		return []Step{{Dir: Forward, Distance: 1}}, nil
	}

	var steps []Step
	i := 0

	if isDigit(path[0]) {
		j := scanDigits(path, 0)
		dist, err := parseDistance(path, 0, j)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Dir: Forward, Distance: dist})
		i = j
	}

	for i < len(path) {
		d, n, ok := MatchDirection(path[i:])
		if !ok {
			r, _ := utf8.DecodeRuneInString(path[i:])
			return nil, errors.New(errors.ErrCodeInvalidDirection,
				"invalid direction character %q in path %q", r, path)
		}
		i += n

		dist := 1
		if j := scanDigits(path, i); j > i {
			var err error
			if dist, err = parseDistance(path, i, j); err != nil {
				return nil, err
			}
			i = j
		}
		steps = append(steps, Step{Dir: d, Distance: dist})
	}

	return steps, nil
}

// WalkSteps integrates steps from the origin. maxCells bounds the total
// number of unit steps; zero means unbounded.
//
// The net coordinate is computed as a vector sum and must agree with the
// last visited cell. A disagreement is reported as
// ErrCodeInternalPathMismatch and indicates a defect, not bad input.
func WalkSteps(steps []Step, maxCells int) (Walk, error) {
	total := 0
	for _, s := range steps {
		if s.Distance < 1 {
			return Walk{}, errors.New(errors.ErrCodeInvalidDistance,
				"step %s has non-positive distance", s)
		}
		if !s.Dir.Valid() {
			return Walk{}, errors.New(errors.ErrCodeInvalidDirection,
				"step has unknown direction %d", s.Dir)
		}
		if total > math.MaxInt-s.Distance {
			return Walk{}, errors.New(errors.ErrCodeInvalidDistance,
				"path length overflows")
		}
		total += s.Distance
		if maxCells > 0 && total > maxCells {
			return Walk{}, errors.New(errors.ErrCodeInvalidDistance,
				"path exceeds %d cells", maxCells)
		}
	}

	w := Walk{Steps: steps, Cells: make([]Coord, 0, total)}
	pos := Origin
	for _, s := range steps {
		v := s.Dir.Vector()
		for k := 0; k < s.Distance; k++ {
			pos = pos.Add(v)
			w.Cells = append(w.Cells, pos)
		}
		w.End = w.End.Add(v.Scale(s.Distance))
	}

	if len(w.Cells) > 0 && w.Cells[len(w.Cells)-1] != w.End {
		return Walk{}, errors.New(errors.ErrCodeInternalPathMismatch,
			"walk ends at %s but steps sum to %s", w.Cells[len(w.Cells)-1], w.End)
	}
	return w, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanDigits returns the index of the first non-digit at or after i.
func scanDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func parseDistance(path string, i, j int) (int, error) {
	n, err := strconv.Atoi(path[i:j])
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidDistance, err,
			"distance %q in path %q", path[i:j], path)
	}
	if n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidDistance,
			"distance %q in path %q must be at least 1", path[i:j], path)
	}
	return n, nil
}
