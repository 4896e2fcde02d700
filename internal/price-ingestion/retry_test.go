package price_ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Do(t *testing.T) {
	errTransient := errors.New("transient")
	policy := RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		Multiplier: 2,
		Retryable: func(err error) bool {
			return errors.Is(err, errTransient)
		},
	}

	t.Run("first attempt succeeds", func(t *testing.T) {
		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("non-retryable error fails immediately", func(t *testing.T) {
		errFatal := errors.New("bad request")
		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			return errFatal
		})

		require.ErrorIs(t, err, errFatal)
		require.Equal(t, 1, calls)
	})

	t.Run("exhausts retry budget", func(t *testing.T) {
		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			return errTransient
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errTransient)
		require.Contains(t, err.Error(), "giving up after 4 attempts")
		require.Equal(t, 4, calls)
	})

	t.Run("waits at least the base delay before retrying", func(t *testing.T) {
		slowPolicy := policy
		slowPolicy.BaseDelay = 20 * time.Millisecond
		slowPolicy.MaxRetries = 1

		calls := 0
		start := time.Now()
		err := slowPolicy.Do(context.Background(), func() error {
			calls++
			if calls == 1 {
				return errTransient
			}
			return nil
		})

		require.NoError(t, err)
		require.Equal(t, 2, calls)
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context stops the backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := policy.Do(ctx, func() error {
			calls++
			return errTransient
		})

		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 1, calls)
	})
}
