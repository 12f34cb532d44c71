// Package ratelimit provides a fixed-window Redis rate limiter used to
// throttle unauthenticated surfaces such as webhook endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter answers whether a key may perform one more action in the current
// window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type redisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisLimiter allows at most limit actions per key per window.
func NewRedisLimiter(client *redis.Client, prefix string, limit int64, window time.Duration) Limiter {
	return &redisLimiter{client: client, prefix: prefix, limit: limit, window: window}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := time.Now().UnixNano() / int64(l.window)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, window)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return count <= l.limit, nil
}

// NewUnlimited returns a limiter that always allows, for tests and
// environments without Redis.
func NewUnlimited() Limiter {
	return unlimitedLimiter{}
}

type unlimitedLimiter struct{}

func (unlimitedLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}
