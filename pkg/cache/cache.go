// Package cache provides byte-level caching for rendered graph
// artifacts.
//
// Three backends share one interface: FileCache for CLI usage,
// RedisCache for multi-instance deployments, and NullCache to disable
// caching. Keys are derived from content hashes so identical graphs hit
// the same entry regardless of where they came from.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// RenderKey builds the cache key for a rendered artifact: the output
// format plus the hash of the DOT source, so any graph that lays out the
// same shares the entry.
func RenderKey(format string, source []byte) string {
	return fmt.Sprintf("render:%s:%s", format, Hash(source))
}
