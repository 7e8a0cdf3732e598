// Package cache stores rendered diagrams so repeated specs skip painting.
//
// Three backends implement [Cache]:
//   - [FileCache]: one file per entry under a directory, for the CLI
//   - [RedisCache]: a shared redis instance, for the HTTP server
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys come from a [Keyer], which hashes a spec together with every option
// that changes its pixels.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RenderKeyOpts lists the options that affect a rendered diagram.
type RenderKeyOpts struct {
	Size      float64
	Padding   int
	Font      string
	FontScale float64
}

// Keyer derives cache keys.
type Keyer interface {
	RenderKey(spec string, opts RenderKeyOpts) string
}

// DefaultKeyer produces "render:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(spec string, opts RenderKeyOpts) string {
	return "render:" + renderDigest(spec, opts)
}

// PrefixKeyer namespaces another keyer's keys, e.g. per deployment on a
// shared redis.
type PrefixKeyer struct {
	Inner  Keyer
	Prefix string
}

// RenderKey implements Keyer.
func (k PrefixKeyer) RenderKey(spec string, opts RenderKeyOpts) string {
	inner := k.Inner
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return k.Prefix + inner.RenderKey(spec, opts)
}
