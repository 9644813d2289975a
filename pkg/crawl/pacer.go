package crawl

import (
	"context"
	"time"
)

// Delay is the politeness pause taken after each processed word.
type Delay time.Duration

// NewPacer returns a fixed pause of delay. A non-positive delay disables pacing.
func NewPacer(delay time.Duration) Delay {
	return Delay(delay)
}

// Wait sleeps for the full delay unless ctx ends first.
func (d Delay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(d)):
		return nil
	}
}
