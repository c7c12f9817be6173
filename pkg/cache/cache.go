// Package cache provides content-addressed caching for computed layouts.
//
// The layout engine is a pure function, so its results can be memoized on a
// structural key: the SHA-256 hash of the canonical axes JSON plus the
// layout-affecting options. The Keyer builds those keys; Cache stores the
// serialized results. Backends:
//   - FileCache: XDG cache directory, for the CLI
//   - RedisCache: shared cache for multi-instance serving
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// TTLs per cached artifact type.
const (
	// TTLLayout is how long computed layouts stay cached. Layout results
	// are pure functions of their key, so the TTL only bounds disk/redis
	// growth, not staleness.
	TTLLayout = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
// Implementations must treat a missing key as (nil, false, nil), not an error.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A TTL of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the layout-affecting options that participate in the
// cache key. Two requests with the same axes but different options must not
// share a cache entry.
type LayoutKeyOpts struct {
	MaxDataCells    int
	HeaderColWidth  string
	DataColWidth    string
	HeaderRowHeight string
	DataRowHeight   string
}

// Keyer generates cache keys.
type Keyer interface {
	// LayoutKey generates a key for a computed layout from the structural
	// hash of the axes document and the layout options.
	LayoutKey(axesHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// LayoutKey generates a layout cache key: "layout:" + hash(inputs).
func (k *DefaultKeyer) LayoutKey(axesHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", axesHash, opts)
}
