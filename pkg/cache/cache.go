// Package cache provides persistent caching of derived volume data.
//
// Computing statistics over a large volume (quantiles need a full sort) is
// the slowest part of opening a dataset, so the results are cached on disk
// keyed by the source file's identity. The cache is content-addressed: a key
// encodes the volume path, file size, modification time, and dimensions, so
// a rewritten file never serves stale statistics.
package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrCacheMiss is returned when an item is not found in cache.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the storage interface. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for the derived data the viewer stores.
type Keyer interface {
	// StatsKey identifies the statistics of one volume file.
	StatsKey(path string, size int64, mtime time.Time, nx, ny, nz int) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// StatsKey generates a key for volume statistics caching.
func (k *DefaultKeyer) StatsKey(path string, size int64, mtime time.Time, nx, ny, nz int) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return hashKey("stats", abs, size, mtime.UnixNano(), nx, ny, nz)
}

// DefaultDir returns the cache directory under the user cache root.
func DefaultDir() (string, error) {
	root, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "voxview"), nil
}
