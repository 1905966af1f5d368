// Package clock holds the waiting primitives used between reconnect attempts.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d. It returns ctx.Err() as soon as ctx is done,
// and without waiting when d is not positive.
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
