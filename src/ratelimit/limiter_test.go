package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"strategy/src/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter(t *testing.T) {
	t.Run("admits while under the threshold", func(t *testing.T) {
		counter := ratelimit.NewMemoryCounter()
		limiter := ratelimit.NewLimiter(counter, 3, time.Millisecond)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.Acquire(ctx))
			limiter.Record(ctx)
		}

		count, err := counter.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("blocks at the threshold until reset", func(t *testing.T) {
		counter := ratelimit.NewMemoryCounter()
		limiter := ratelimit.NewLimiter(counter, 2, 5*time.Millisecond)
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			require.NoError(t, limiter.Acquire(ctx))
			limiter.Record(ctx)
		}

		// The window is exhausted; Acquire must keep retrying until the
		// context gives up.
		waitCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
		defer cancel()
		assert.Error(t, limiter.Acquire(waitCtx))

		require.NoError(t, limiter.Reset(ctx))
		assert.NoError(t, limiter.Acquire(ctx))
	})

	t.Run("counter never exceeds threshold plus the in-flight increment", func(t *testing.T) {
		counter := ratelimit.NewMemoryCounter()
		threshold := int64(5)
		limiter := ratelimit.NewLimiter(counter, threshold, time.Millisecond)
		ctx := context.Background()

		for i := 0; i < int(threshold); i++ {
			require.NoError(t, limiter.Acquire(ctx))

			count, err := counter.Get(ctx)
			require.NoError(t, err)
			assert.Less(t, count, threshold, "Acquire admitted a caller at count %d", count)

			limiter.Record(ctx)
		}
	})

	t.Run("reset is a no-op on a zero counter", func(t *testing.T) {
		counter := ratelimit.NewMemoryCounter()
		limiter := ratelimit.NewLimiter(counter, 2, time.Millisecond)

		require.NoError(t, limiter.Reset(context.Background()))
	})
}
