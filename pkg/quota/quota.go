// Package quota implements atomic daily usage counters. The Redis backend
// uses INCR with a midnight-UTC expiry so concurrent sends cannot overshoot
// the limit.
package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrQuotaExceeded is returned by Consume when the day's allowance is spent.
var ErrQuotaExceeded = errors.New("daily quota exceeded")

// Counter checks and consumes daily quota units for a user.
type Counter interface {
	// Consume atomically takes one unit. Returns the count used so far
	// today (including this unit) or ErrQuotaExceeded without consuming
	// visibility-wise beyond the limit.
	Consume(ctx context.Context, userID string, limit int64) (int64, error)

	// Used reports how many units the user consumed today.
	Used(ctx context.Context, userID string) (int64, error)
}

type redisCounter struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisCounter(client *redis.Client, prefix string) Counter {
	return &redisCounter{client: client, prefix: prefix, now: time.Now}
}

func (c *redisCounter) key(userID string) string {
	return fmt.Sprintf("%s:%s:%s", c.prefix, userID, c.now().UTC().Format("2006-01-02"))
}

func (c *redisCounter) Consume(ctx context.Context, userID string, limit int64) (int64, error) {
	key := c.key(userID)

	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("quota incr: %w", err)
	}
	if count == 1 {
		// First unit of the day sets the expiry at next midnight UTC.
		midnight := c.now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
		if err := c.client.ExpireAt(ctx, key, midnight).Err(); err != nil {
			return 0, fmt.Errorf("quota expire: %w", err)
		}
	}

	if count > limit {
		// Roll the overshoot back so Used stays accurate.
		_ = c.client.Decr(ctx, key).Err()
		return limit, ErrQuotaExceeded
	}
	return count, nil
}

func (c *redisCounter) Used(ctx context.Context, userID string) (int64, error) {
	n, err := c.client.Get(ctx, c.key(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("quota get: %w", err)
	}
	return n, nil
}
