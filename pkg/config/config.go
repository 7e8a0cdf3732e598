// Package config loads hexglyph settings from a TOML file.
//
// Every field has a default, so a missing file is the same as an empty one.
// Command-line flags are applied on top of the loaded [Config] by the caller.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/fonts"
	"github.com/matzehuels/hexglyph/pkg/layout"
	"github.com/matzehuels/hexglyph/pkg/notation"
)

// Defaults for fields not set in the file.
const (
	DefaultOutDir     = "public/images"
	DefaultServerAddr = ":8080"
	DefaultCacheTTL   = 7 * 24 * time.Hour
	DefaultRedisAddr  = "localhost:6379"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the decoded configuration file.
type Config struct {
	Size            float64 `toml:"size"`
	Padding         *int    `toml:"padding"`
	OutDir          string  `toml:"out_dir"`
	Font            string  `toml:"font"`
	FontScale       float64 `toml:"font_scale"`
	MaxCells        int     `toml:"max_cells"`
	ReferencePrefix string  `toml:"reference_prefix"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the render cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// ServerConfig configures `hexglyph serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`

	// MaxCells caps the unit steps per token for requests; zero uses the
	// server's default.
	MaxCells int `toml:"max_cells"`
}

// Duration decodes TOML strings such as "24h" into a time.Duration.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills zero-valued fields.
func (c *Config) SetDefaults() {
	if c.Size == 0 {
		c.Size = layout.DefaultSize
	}
	if c.Padding == nil {
		p := layout.DefaultPadding
		c.Padding = &p
	}
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.Font == "" {
		c.Font = fonts.DefaultFont
	}
	if c.FontScale == 0 {
		c.FontScale = layout.DefaultFontScale
	}
	if c.ReferencePrefix == "" {
		c.ReferencePrefix = notation.DefaultPrefix
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheFile
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = DefaultCacheDir()
	}
	if c.Cache.RedisAddr == "" {
		c.Cache.RedisAddr = DefaultRedisAddr
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = DefaultCacheTTL
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}

// Validate rejects settings the renderer cannot honor.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "size must be positive, got %g", c.Size)
	case c.Padding != nil && *c.Padding < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "padding must not be negative, got %d", *c.Padding)
	case c.FontScale <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "font_scale must be positive, got %g", c.FontScale)
	case c.MaxCells < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "max_cells must not be negative, got %d", c.MaxCells)
	case c.Server.MaxCells < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_cells must not be negative, got %d", c.Server.MaxCells)
	case c.Cache.TTL.Duration < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	switch c.Cache.Backend {
	case CacheFile, CacheRedis, CacheNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	return nil
}

// Load reads path, applies defaults and validates. An empty path loads
// DefaultPath when that file exists and defaults otherwise.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	c := &Config{}
	if path != "" {
		md, err := toml.DecodeFile(path, c)
		switch {
		case os.IsNotExist(err) && !explicit:
		case os.IsNotExist(err):
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		case err != nil:
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, errors.New(errors.ErrCodeInvalidConfig,
					"%s: unknown key %q", path, undecoded[0].String())
			}
		}
	}

	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/hexglyph/config.toml, or "" when no
// config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hexglyph", "config.toml")
}

// DefaultCacheDir returns $XDG_CACHE_HOME/hexglyph, falling back to the
// system temp directory.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "hexglyph")
}
