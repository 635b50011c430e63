package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BlocksAfterMaxTries(t *testing.T) {
	ctx := context.Background()
	rl := NewRateLimiter(time.Minute, 2)

	assert.True(t, rl.Allow(ctx, "ann@x.com"))
	assert.True(t, rl.Allow(ctx, "ann@x.com"))
	assert.False(t, rl.Allow(ctx, "ann@x.com"))

	// Other keys are unaffected.
	assert.True(t, rl.Allow(ctx, "bob@x.com"))
}

func TestRateLimiter_ResetsAfterWindow(t *testing.T) {
	ctx := context.Background()
	rl := NewRateLimiter(10*time.Millisecond, 1)

	assert.True(t, rl.Allow(ctx, "ann@x.com"))
	assert.False(t, rl.Allow(ctx, "ann@x.com"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow(ctx, "ann@x.com"))
}
