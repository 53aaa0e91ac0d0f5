// Package clock provides cancellable waiting for polling loops.
package clock

import (
	"context"
	"time"
)

// SleepFunc waits for d or until ctx is done. Services take one so tests can
// replace real waiting.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Loop runs fn, then waits interval, forever. It stops with the first error
// returned by fn or by the wait, including context cancellation.
func Loop(ctx context.Context, interval time.Duration, sleep SleepFunc, fn func(context.Context) error) error {
	if sleep == nil {
		sleep = SleepWithContext
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx); err != nil {
			return err
		}
		if err := sleep(ctx, interval); err != nil {
			return err
		}
	}
}
