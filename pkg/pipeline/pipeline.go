// Package pipeline turns spec strings into diagram files.
//
// This package implements the parse → layout → paint pipeline shared by the
// CLI and the HTTP server:
//
//  1. Parse: split the spec into tokens and walk each path (package notation)
//  2. Layout: compute hexagons, labels and the tight canvas (package layout)
//  3. Paint: rasterize the scene and encode PNG (package render)
//
// Most callers only need the two package-level entry points:
//
//	if pipeline.Validate(spec) {
//	    path, err := pipeline.Render(spec, "public/images", 46)
//	}
//
// A [Runner] adds a render cache, logging and batch rendering:
//
//	runner := pipeline.NewRunner(cache, nil, logger, pipeline.Options{})
//	png, hit, err := runner.RenderPNG(ctx, "m-La")
package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/hexglyph/pkg/cache"
	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/fonts"
	"github.com/matzehuels/hexglyph/pkg/layout"
	"github.com/matzehuels/hexglyph/pkg/notation"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultOutDir is where rendered diagrams are written.
	DefaultOutDir = "public/images"

	// DefaultCacheTTL is how long rendered PNGs stay in the cache.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options controls how specs are parsed and drawn.
type Options struct {
	// Size is the hex radius in pixels.
	Size float64 `json:"size"`

	// Padding is the margin around the tight bounds in pixels. Nil means
	// layout.DefaultPadding; zero is a valid explicit value.
	Padding *int `json:"padding,omitempty"`

	// Font is the preferred label font, a path or a system font file name.
	Font string `json:"font"`

	// FontScale is the label size relative to Size.
	FontScale float64 `json:"font_scale"`

	// MaxCells bounds the unit steps in a single token. Zero, the
	// default, accepts any distance.
	MaxCells int `json:"max_cells"`

	// CacheTTL is passed to the cache when storing a rendered PNG.
	CacheTTL time.Duration `json:"-"`

	// Refresh skips cache reads but still stores the result.
	Refresh bool `json:"-"`
}

// SetDefaults fills zero-valued fields.
func (o *Options) SetDefaults() {
	if o.Size == 0 {
		o.Size = layout.DefaultSize
	}
	if o.Padding == nil {
		p := layout.DefaultPadding
		o.Padding = &p
	}
	if o.Font == "" {
		o.Font = fonts.DefaultFont
	}
	if o.FontScale == 0 {
		o.FontScale = layout.DefaultFontScale
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
}

// Validate checks the options after defaults have been applied.
func (o *Options) Validate() error {
	if err := o.LayoutOptions().Validate(); err != nil {
		return err
	}
	if o.MaxCells < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max cells must not be negative, got %d", o.MaxCells)
	}
	return nil
}

// LayoutOptions returns the subset of options used by layout.Compute.
func (o *Options) LayoutOptions() layout.Options {
	opts := layout.Options{Size: o.Size, FontScale: o.FontScale, Padding: layout.DefaultPadding}
	if o.Padding != nil {
		opts.Padding = *o.Padding
	}
	return opts
}

// Parser returns a notation parser honoring MaxCells.
func (o *Options) Parser() notation.Parser {
	return notation.Parser{MaxCells: o.MaxCells}
}

// RenderKeyOpts returns cache key options for a rendered diagram.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	lo := o.LayoutOptions()
	return cache.RenderKeyOpts{
		Size:      lo.Size,
		Padding:   lo.Padding,
		Font:      o.Font,
		FontScale: lo.FontScale,
	}
}

// =============================================================================
// Entry Points
// =============================================================================

// Validate reports whether spec is a well-formed diagram spec. It never
// panics and accepts bare specs only; see notation.Normalize for image
// references.
func Validate(spec string) bool {
	return notation.Valid(spec)
}

// Render draws spec with hex radius size and writes it to
// outDir/<spec>.png, returning the path. No cache is consulted.
func Render(spec, outDir string, size float64) (string, error) {
	r := NewRunner(nil, nil, nil, Options{Size: size})
	return r.Render(context.Background(), spec, outDir)
}
