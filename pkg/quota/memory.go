package quota

import (
	"context"
	"sync"
	"time"
)

// memoryCounter backs tests and single-node development runs.
type memoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	day    string
	now    func() time.Time
}

func NewMemoryCounter() Counter {
	return &memoryCounter{counts: map[string]int64{}, now: time.Now}
}

func (c *memoryCounter) rollover() {
	today := c.now().UTC().Format("2006-01-02")
	if c.day != today {
		c.day = today
		c.counts = map[string]int64{}
	}
}

func (c *memoryCounter) Consume(_ context.Context, userID string, limit int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollover()

	if c.counts[userID] >= limit {
		return limit, ErrQuotaExceeded
	}
	c.counts[userID]++
	return c.counts[userID], nil
}

func (c *memoryCounter) Used(_ context.Context, userID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollover()
	return c.counts[userID], nil
}
