package cache

import (
	"context"
	"time"
)

type noopCache struct{}

// NewNoop returns a cache where every Get misses. Used when no Redis URL is
// configured; the API then recomputes analytics on every request.
func NewNoop() Cache {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context, key string) (string, error) {
	return "", ErrMiss
}

func (noopCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}
