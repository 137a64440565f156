package ratelimit

import (
	"context"
	"fmt"
	"time"

	"strategy/src/utils"

	"github.com/sethvargo/go-retry"
)

// Limiter bounds outbound brokerage API calls using a shared counter. Acquire
// blocks (sleep and re-read) while the counter is at or above the threshold;
// the external reset job is what eventually unblocks it, so there is no upper
// bound on the wait beyond context cancellation.
type Limiter struct {
	counter   Counter
	threshold int64
	backoff   time.Duration
}

func NewLimiter(counter Counter, threshold int64, backoff time.Duration) *Limiter {
	return &Limiter{
		counter:   counter,
		threshold: threshold,
		backoff:   backoff,
	}
}

// Acquire waits until the counter is below the threshold. The caller must
// invoke Record after the external call succeeds.
func (l *Limiter) Acquire(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	return retry.Do(ctx, retry.NewConstant(l.backoff), func(ctx context.Context) error {
		count, err := l.counter.Get(ctx)
		if err != nil {
			return err
		}
		if count >= l.threshold {
			logger.Warnf("too many API requests (%d), retrying in %s", count, l.backoff)
			return retry.RetryableError(fmt.Errorf("request counter at %d, threshold %d", count, l.threshold))
		}
		return nil
	})
}

// Record increments the shared counter by one. Increments are best-effort.
func (l *Limiter) Record(ctx context.Context) {
	if err := l.counter.Incr(ctx); err != nil {
		utils.LoggerFromContext(ctx).Warnf("failed to increment request counter: %v", err)
	}
}

// Reset zeroes the shared counter. Scheduled to run once per rate window.
func (l *Limiter) Reset(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)
	count, err := l.counter.Get(ctx)
	if err != nil {
		return err
	}
	logger.Infof("request counter at %d", count)
	if count == 0 {
		return nil
	}
	if err := l.counter.Reset(ctx); err != nil {
		return err
	}
	logger.Info("request counter reset")
	return nil
}
