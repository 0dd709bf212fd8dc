package ramajudicial

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("permits a full window burst then blocks", func(t *testing.T) {
		limiter := NewRateLimiter(15)

		for i := 0; i < 15; i++ {
			assert.True(t, limiter.Allow(), "request %d should be inside the window", i+1)
		}
		assert.False(t, limiter.Allow(), "request 16 should exceed the window")
	})

	t.Run("single request per minute", func(t *testing.T) {
		limiter := NewRateLimiter(1)

		assert.True(t, limiter.Allow())
		assert.False(t, limiter.Allow())
	})
}

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("does not block within the window", func(t *testing.T) {
		limiter := NewRateLimiter(15)

		start := time.Now()
		for i := 0; i < 15; i++ {
			require.NoError(t, limiter.Wait(context.Background()))
		}
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("honours context cancellation while waiting", func(t *testing.T) {
		limiter := NewRateLimiter(1)
		require.NoError(t, limiter.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx)
		assert.Error(t, err)
	})
}
