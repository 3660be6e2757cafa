// Package clock provides time helpers that respect context cancellation.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d, or returns the context error as soon as
// ctx ends.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
