// Package buildinfo reports which hexglyph build is running.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/hexglyph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/hexglyph/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/hexglyph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/hexglyph
//
// A plain `go install` leaves them unset; [Resolve] then fills them from
// the module build info embedded by the toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var resolveOnce sync.Once

// Resolve fills unset variables from debug.ReadBuildInfo. Safe to call
// more than once.
func Resolve() {
	resolveOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		fill(info)
	})
}

func fill(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = s.Value
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}

// String is the multi-line form printed by `hexglyph --version`.
func String() string {
	return fmt.Sprintf("hexglyph %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra version template.
func Template() string {
	return String() + "\n"
}

// UserAgent identifies the build in HTTP responses.
func UserAgent() string {
	return "hexglyph/" + Version
}
