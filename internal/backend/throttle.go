package backend

import (
	"context"
	"sync"
	"time"
)

// throttle keeps reloads of a file that is rewritten in bursts at least one
// interval apart.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until a reload is allowed. It reports false when ctx ended
// first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	delay := t.interval - time.Since(t.last)
	t.mu.Unlock()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	t.mu.Lock()
	t.last = time.Now()
	t.mu.Unlock()
	return true
}
