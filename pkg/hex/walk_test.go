package hex

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/hexglyph/pkg/errors"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Step
	}{
		{"empty is one forward", "", []Step{{Forward, 1}}},
		{"single back", "B", []Step{{Back, 1}}},
		{"bare digits", "2", []Step{{Forward, 2}}},
		{"bare digits then direction", "2R", []Step{{Forward, 2}, {Right, 1}}},
		{"forward two right one", "F2R", []Step{{Forward, 2}, {Right, 1}}},
		{"back left before back", "BL", []Step{{BackLeft, 1}}},
		{"back right with distance", "BR3", []Step{{BackRight, 3}}},
		{"back then left split by digit", "B2L", []Step{{Back, 2}, {Left, 1}}},
		{"multi digit distance", "F12", []Step{{Forward, 12}}},
		{"all directions", "FLRBBLBR", []Step{{Forward, 1}, {Left, 1}, {Right, 1}, {Back, 1}, {BackLeft, 1}, {BackRight, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path)
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.path, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"lowercase direction", "f", errors.ErrCodeInvalidDirection},
		{"unknown letter", "X", errors.ErrCodeInvalidDirection},
		{"unknown after step", "F2x", errors.ErrCodeInvalidDirection},
		{"space", "F R", errors.ErrCodeInvalidDirection},
		{"zero distance", "F0", errors.ErrCodeInvalidDistance},
		{"bare zero", "0", errors.ErrCodeInvalidDistance},
		{"overflow", "F99999999999999999999999", errors.ErrCodeInvalidDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.path)
			if err == nil {
				t.Fatalf("ParsePath(%q) expected error", tt.path)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("ParsePath(%q) code = %v, want %v", tt.path, errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestParsePathErrorNamesInput(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"F2x", `invalid direction character 'x' in path "F2x"`},
		{"F2é", `invalid direction character 'é' in path "F2é"`},
		{"Rß3", `invalid direction character 'ß' in path "Rß3"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := ParsePath(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if msg := errors.UserMessage(err); msg != tt.want {
				t.Errorf("message = %q, want %q", msg, tt.want)
			}
		})
	}
}

func TestWalkSteps(t *testing.T) {
	tests := []struct {
		name      string
		steps     []Step
		wantEnd   Coord
		wantCells []Coord
	}{
		{
			name:      "one forward",
			steps:     []Step{{Forward, 1}},
			wantEnd:   Coord{1, 0},
			wantCells: []Coord{{1, 0}},
		},
		{
			name:      "one back",
			steps:     []Step{{Back, 1}},
			wantEnd:   Coord{-1, 0},
			wantCells: []Coord{{-1, 0}},
		},
		{
			name:      "forward two",
			steps:     []Step{{Forward, 2}},
			wantEnd:   Coord{2, 0},
			wantCells: []Coord{{1, 0}, {2, 0}},
		},
		{
			name:      "forward two right",
			steps:     []Step{{Forward, 2}, {Right, 1}},
			wantEnd:   Coord{2, 1},
			wantCells: []Coord{{1, 0}, {2, 0}, {2, 1}},
		},
		{
			name:      "forward two left",
			steps:     []Step{{Forward, 2}, {Left, 1}},
			wantEnd:   Coord{3, -1},
			wantCells: []Coord{{1, 0}, {2, 0}, {3, -1}},
		},
		{
			name:      "back diagonals",
			steps:     []Step{{BackLeft, 1}, {BackRight, 2}},
			wantEnd:   Coord{-1, -1},
			wantCells: []Coord{{-1, 1}, {-1, 0}, {-1, -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := WalkSteps(tt.steps, 0)
			if err != nil {
				t.Fatalf("WalkSteps() error = %v", err)
			}
			if w.End != tt.wantEnd {
				t.Errorf("End = %v, want %v", w.End, tt.wantEnd)
			}
			if !reflect.DeepEqual(w.Cells, tt.wantCells) {
				t.Errorf("Cells = %v, want %v", w.Cells, tt.wantCells)
			}
			if last := w.Cells[len(w.Cells)-1]; last != w.End {
				t.Errorf("last cell %v != end %v", last, w.End)
			}
		})
	}
}

func TestWalkStepsLimits(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		if _, err := WalkSteps([]Step{{Forward, 3}, {Right, 1}}, 4); err != nil {
			t.Errorf("WalkSteps() error = %v", err)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := WalkSteps([]Step{{Forward, 3}, {Right, 2}}, 4)
		if !errors.Is(err, errors.ErrCodeInvalidDistance) {
			t.Errorf("WalkSteps() error = %v, want %v", err, errors.ErrCodeInvalidDistance)
		}
	})

	t.Run("unbounded", func(t *testing.T) {
		w, err := WalkSteps([]Step{{Forward, 40}, {Right, 30}}, 0)
		if err != nil {
			t.Fatalf("WalkSteps() error = %v", err)
		}
		if len(w.Cells) != 70 || w.End != (Coord{Q: 40, R: 30}) {
			t.Errorf("WalkSteps() = %d cells ending at %s", len(w.Cells), w.End)
		}
	})

	t.Run("length overflow", func(t *testing.T) {
		_, err := WalkSteps([]Step{{Forward, math.MaxInt}, {Right, 1}}, 0)
		if !errors.Is(err, errors.ErrCodeInvalidDistance) {
			t.Errorf("WalkSteps() error = %v, want %v", err, errors.ErrCodeInvalidDistance)
		}
	})

	t.Run("zero distance", func(t *testing.T) {
		_, err := WalkSteps([]Step{{Forward, 0}}, 0)
		if !errors.Is(err, errors.ErrCodeInvalidDistance) {
			t.Errorf("WalkSteps() error = %v, want %v", err, errors.ErrCodeInvalidDistance)
		}
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := WalkSteps([]Step{{Direction(9), 1}}, 0)
		if !errors.Is(err, errors.ErrCodeInvalidDirection) {
			t.Errorf("WalkSteps() error = %v, want %v", err, errors.ErrCodeInvalidDirection)
		}
	})
}
