package price_ingestion

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy re-runs an operation on retryable failures, doubling the wait
// between attempts. MaxRetries counts attempts after the first one.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Multiplier float64
	Retryable  func(error) bool
}

func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	delay := p.BaseDelay
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt >= p.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * p.Multiplier)
	}

	return fmt.Errorf("giving up after %d attempts: %w", p.MaxRetries+1, err)
}
