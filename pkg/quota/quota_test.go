package quota

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounter_ConsumeUpToLimit(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCounter()

	for i := int64(1); i <= 5; i++ {
		n, err := c.Consume(ctx, "u1", 5)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	_, err := c.Consume(ctx, "u1", 5)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	used, err := c.Used(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), used)
}

func TestMemoryCounter_PerUserIsolation(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCounter()

	_, err := c.Consume(ctx, "u1", 1)
	require.NoError(t, err)
	_, err = c.Consume(ctx, "u1", 1)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	n, err := c.Consume(ctx, "u2", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryCounter_ConcurrentConsumeNeverOvershoots(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCounter()

	const limit = 5
	const goroutines = 50

	var wg sync.WaitGroup
	granted := make(chan struct{}, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Consume(ctx, "u1", limit); err == nil {
				granted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(granted)

	assert.Equal(t, limit, len(granted))
}
