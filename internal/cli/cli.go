// Package cli implements the hexglyph command-line interface.
//
// # Commands
//
//   - render: draw one or more specs to PNG files
//   - validate: check specs without drawing
//   - csv: render every image reference found in a spreadsheet export
//   - sheet: compose several specs into one contact sheet
//   - serve: serve diagrams over HTTP
//   - cache: manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context; see loggerFromContext.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexglyph/pkg/buildinfo"
	"github.com/matzehuels/hexglyph/pkg/cache"
	"github.com/matzehuels/hexglyph/pkg/config"
	"github.com/matzehuels/hexglyph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "hexglyph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	buildinfo.Resolve()
	root := &cobra.Command{
		Use:   appName,
		Short: "Hexglyph draws hex action-token diagrams",
		Long: `Hexglyph renders small PNG diagrams of action tokens on a hex grid.

A spec is a dash-separated list of tokens. Each token is a path of direction
steps (F, L, R, B, BL, BR, each with an optional distance) followed by an
action letter: a (attack), m (move), j (jump), c (charge) or b (block).`,
		Example: `  hexglyph render F2Ra
  hexglyph render HexstrikeImages/m-La.png -o public/images
  hexglyph csv cards.csv`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/hexglyph/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the render cache")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.csvCommand())
	root.AddCommand(c.sheetCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// drawFlags are the drawing options shared by render, csv, sheet and serve.
type drawFlags struct {
	size    float64
	padding int
	font    string
	refresh bool
}

func (f *drawFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.size, "size", 0, "hex radius in pixels (default from config, 46)")
	cmd.Flags().IntVar(&f.padding, "padding", -1, "margin around the diagram in pixels (default from config, 1)")
	cmd.Flags().StringVar(&f.font, "font", "", "label font file or system font name (default from config, arial.ttf)")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when a cached image exists")
}

// options merges flags over the loaded config.
func (c *CLI) options(f drawFlags) pipeline.Options {
	cfg := c.config()
	opts := pipeline.Options{
		Size:      cfg.Size,
		Padding:   cfg.Padding,
		Font:      cfg.Font,
		FontScale: cfg.FontScale,
		MaxCells:  cfg.MaxCells,
		CacheTTL:  cfg.Cache.TTL.Duration,
		Refresh:   f.refresh,
	}
	if f.size != 0 {
		opts.Size = f.size
	}
	if f.padding >= 0 {
		p := f.padding
		opts.Padding = &p
	}
	if f.font != "" {
		opts.Font = f.font
	}
	return opts
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, f drawFlags) (*pipeline.Runner, error) {
	ch, keyer, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, keyer, loggerFromContext(ctx), c.options(f))
	if err := r.Options.Validate(); err != nil {
		ch.Close()
		return nil, err
	}
	return r, nil
}

// newCache opens the configured cache backend. Redis keys are namespaced
// since the instance may be shared.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, cache.Keyer, error) {
	cfg := c.config()
	if c.noCache {
		return cache.NewNullCache(), nil, nil
	}
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil, nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: cfg.Cache.RedisAddr})
		if err != nil {
			return nil, nil, fmt.Errorf("connect cache: %w", err)
		}
		return rc, cache.PrefixKeyer{Prefix: appName + ":"}, nil
	default:
		fc, err := cache.NewFileCache(cfg.Cache.Dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, continuing without cache", "dir", cfg.Cache.Dir, "error", err)
			return cache.NewNullCache(), nil, nil
		}
		return fc, nil, nil
	}
}

// config returns the loaded config, or defaults when PersistentPreRunE has
// not run (as in direct command tests).
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}
