// Package cache provides the short-lived analytics cache. Keys are scoped per
// user and range so journal writes can invalidate exactly the payloads they
// stale.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// AnalyticsTTL bounds how stale a cached analytics payload may get. Writes
// invalidate eagerly; the TTL is the backstop.
const AnalyticsTTL = 10 * time.Minute

// ErrMiss is returned by Get when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a minimal string cache. Implementations must treat a miss as
// ErrMiss, never as an empty value.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// AnalyticsKey builds the cache key for one user's analytics payload over a
// day range.
func AnalyticsKey(userID string, days int) string {
	return fmt.Sprintf("horizon:analytics:%s:%d", userID, days)
}

// AnalyticsKeysForUser returns every analytics key a journal write can stale
// for a user, one per supported range.
func AnalyticsKeysForUser(userID string) []string {
	return []string{
		AnalyticsKey(userID, 7),
		AnalyticsKey(userID, 30),
		AnalyticsKey(userID, 90),
	}
}
