// Package cache stores fetched pages so repeated scans of the same URL
// do not refetch. The analyzer itself never caches; only the fetch path
// in front of it does.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory, disk and layered
// implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// PageKey derives the cache key for a fetched URL.
func PageKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "subjuntivo:v1:" + hex.EncodeToString(sum[:])
}
