package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts hits per key in fixed time windows.
// Key format: ratelimit:<scope>:<key>
type FixedWindowLimiter struct {
	client *redis.Client
	scope  string
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter for the given scope (e.g. "login").
func NewFixedWindowLimiter(client *redis.Client, scope string, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, scope: scope, window: window}
}

// Hit records one hit for key and returns the hit count in the current
// window. The first hit of a window sets the expiry.
func (l *FixedWindowLimiter) Hit(ctx context.Context, key string) (int64, error) {
	k := fmt.Sprintf("ratelimit:%s:%s", l.scope, key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return n, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n, nil
}
