package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hexglyph/pkg/cache"
	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/fonts"
	"github.com/matzehuels/hexglyph/pkg/layout"
	"github.com/matzehuels/hexglyph/pkg/notation"
	"github.com/matzehuels/hexglyph/pkg/observability"
	"github.com/matzehuels/hexglyph/pkg/render"
)

const cacheKeyType = "render"

// Runner renders specs with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// A Runner holds no per-render state, so multiple goroutines can share one.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Options Options

	// Backend paints scenes. Nil means the gg raster backend with
	// Options.Font.
	Backend render.Backend
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log output is discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger, opts Options) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	opts.SetDefaults()
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		Options: opts,
	}
}

// Validate reports whether spec parses under the runner's cell limit.
func (r *Runner) Validate(spec string) bool {
	return r.Options.Parser().Valid(spec)
}

// Scene parses spec and lays it out without painting.
func (r *Runner) Scene(spec string) (*layout.Scene, error) {
	if err := r.Options.Validate(); err != nil {
		return nil, err
	}
	tokens, err := r.Options.Parser().Parse(spec)
	if err != nil {
		return nil, err
	}
	return layout.Compute(notation.NewPlacements(tokens), r.Options.LayoutOptions())
}

// RenderPNG returns the encoded diagram for spec and whether it came from
// the cache. Cache failures are logged and never fail the render.
func (r *Runner) RenderPNG(ctx context.Context, spec string) ([]byte, bool, error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, spec)

	data, hit, err := r.renderPNG(ctx, spec)
	observability.Render().OnRenderComplete(ctx, spec, len(data), time.Since(start), err)
	return data, hit, err
}

func (r *Runner) renderPNG(ctx context.Context, spec string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	key := r.Keyer.RenderKey(spec, r.Options.RenderKeyOpts())

	if !r.Options.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "spec", spec, "error", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			r.Logger.Debug("cache hit", "spec", spec)
			return data, true, nil
		default:
			observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		}
	}

	scene, err := r.Scene(spec)
	if err != nil {
		return nil, false, err
	}
	data, err := render.PNG(scene, r.backend())
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "paint %q", spec)
	}
	r.Logger.Debug("rendered diagram",
		"spec", spec,
		"width", scene.Width,
		"height", scene.Height,
		"placeholders", len(scene.Placeholders))

	if err := r.Cache.Set(ctx, key, data, r.Options.CacheTTL); err != nil {
		r.Logger.Warn("cache write failed", "spec", spec, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	}
	return data, false, nil
}

// Render writes the diagram for spec to outDir/<spec>.png, creating outDir
// if needed, and returns the path.
func (r *Runner) Render(ctx context.Context, spec, outDir string) (string, error) {
	if err := errors.ValidateDir(outDir); err != nil {
		return "", err
	}
	name := notation.FileName(spec)
	if err := errors.ValidateFilename(name); err != nil {
		return "", err
	}

	data, hit, err := r.RenderPNG(ctx, spec)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	r.Logger.Info("wrote diagram", "spec", spec, "path", path, "cached", hit)
	return path, nil
}

func (r *Runner) backend() render.Backend {
	if r.Backend != nil {
		return r.Backend
	}
	f := fonts.Load(r.Options.Font)
	if f.Fallback && f.Err != nil {
		r.Logger.Debug("label font unavailable, using fallback",
			"font", r.Options.Font,
			"fallback", f.Name,
			"error", f.Err)
	}
	return render.GG{Font: f}
}
