package backend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottleSpacesReloads(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	assert.True(t, th.wait(ctx))
	assert.True(t, th.wait(ctx))
	assert.True(t, th.wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestThrottleDisabled(t *testing.T) {
	ctx := context.Background()
	var nilThrottle *throttle
	assert.True(t, nilThrottle.wait(ctx))

	th := newThrottle(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		th.wait(ctx)
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestThrottleStopsOnCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, th.wait(ctx))
	cancel()
	assert.False(t, th.wait(ctx))

	var nilThrottle *throttle
	assert.False(t, nilThrottle.wait(ctx))
}
