// Package clock lets polling loops wait on the wall clock or on a test double.
package clock

import (
	"context"
	"time"
)

// Real waits on the wall clock.
type Real struct{}

// Sleep waits for d or returns the context error once ctx is done. A
// non-positive d only checks ctx.
func (Real) Sleep(ctx context.Context, d time.Duration) error {
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
