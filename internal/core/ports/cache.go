// internal/core/ports/cache.go
package ports

import (
	"context"
	"errors"
	"time"
)

// Cache is the read-cache port used in front of stock unit reads. Mutating
// operations invalidate their keys after commit.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Ping(ctx context.Context) error
}

// ErrCacheMiss is returned by Get when the key is absent. Declared here so
// callers do not import the redis adapter to classify it.
var ErrCacheMiss = errors.New("cache miss")
