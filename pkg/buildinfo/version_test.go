package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func restore(t *testing.T) {
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestTemplate(t *testing.T) {
	restore(t)
	Version = "v1.2.3"

	if got := Template(); !strings.HasPrefix(got, "hexglyph v1.2.3\n") || !strings.HasSuffix(got, "\n") {
		t.Errorf("Template() = %q", got)
	}
	if got, want := UserAgent(), "hexglyph/v1.2.3"; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}

func TestFill(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	tests := []struct {
		name                string
		version, commit     string
		wantVer, wantCommit string
	}{
		{"unset", "dev", "none", "v0.4.0", "abc123"},
		{"ldflags win", "v9.9.9", "fff", "v9.9.9", "fff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)
			Version, Commit, Date = tt.version, tt.commit, "unknown"
			fill(info)
			if Version != tt.wantVer || Commit != tt.wantCommit {
				t.Errorf("fill() = %s/%s, want %s/%s", Version, Commit, tt.wantVer, tt.wantCommit)
			}
			if Date != "2026-01-02T03:04:05Z" {
				t.Errorf("Date = %q", Date)
			}
		})
	}
}

func TestFillDevelVersion(t *testing.T) {
	restore(t)
	Version = "dev"
	fill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("Version = %q, want dev", Version)
	}
}
