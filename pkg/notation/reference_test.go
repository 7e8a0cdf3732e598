package notation

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"prefixed", "HexstrikeImages/2a.png", "2a"},
		{"case insensitive", "hexstrikeimages/F2Ra.PNG", "F2Ra"},
		{"bare", "2a", "2a"},
		{"suffix only", "m-Ba.png", "m-Ba"},
		{"whitespace", "  HexstrikeImages/a-Rj-Lm.png ", "a-Rj-Lm"},
		{"other prefix kept", "Other/2a.png", "Other/2a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.ref, DefaultPrefix)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.ref, got, tt.want)
			}
			if again := Normalize(got, DefaultPrefix); again != got {
				t.Errorf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormalizeCustomPrefix(t *testing.T) {
	if got := Normalize("Prefix/2a.png", "Prefix/"); got != "2a" {
		t.Errorf("Normalize() = %q, want 2a", got)
	}
	if got := Normalize("2a", "Prefix/"); got != "2a" {
		t.Errorf("Normalize() = %q, want 2a", got)
	}
}

func TestIsReference(t *testing.T) {
	tests := []struct {
		cell string
		want bool
	}{
		{"HexstrikeImages/2a.png", true},
		{"HEXSTRIKEIMAGES/m.Png", true},
		{" HexstrikeImages/m.png ", true},
		{"HexstrikeImages/m.jpg", false},
		{"images/m.png", false},
		{"2a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			if got := IsReference(tt.cell, DefaultPrefix); got != tt.want {
				t.Errorf("IsReference(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("F2Ra"); got != "F2Ra.png" {
		t.Errorf("FileName() = %q", got)
	}
}
