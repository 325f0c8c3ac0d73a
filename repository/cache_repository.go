package repository

import "time"

// CacheRepository is a best-effort key/value cache for generated content.
// A zero ttl means the entry never expires.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
