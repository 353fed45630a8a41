package repository

import "context"

// CacheRepository caches expensive projection results keyed by a hash of the
// input that produced them. Misses are not errors.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
