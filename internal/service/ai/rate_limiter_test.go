package ai_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rwfw/backend/internal/service/ai"
)

func TestRateLimiter_BurstUpToLimit(t *testing.T) {
	rl := ai.NewRateLimiter(5)
	for i := 0; i < 5; i++ {
		require.NoError(t, rl.Wait(context.Background()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, rl.Wait(ctx))
}

func TestRateLimiter_NonPositiveUsesDefault(t *testing.T) {
	for _, perMinute := range []int{0, -3} {
		rl := ai.NewRateLimiter(perMinute)
		for i := 0; i < ai.DefaultRateLimit; i++ {
			require.NoError(t, rl.Wait(context.Background()))
		}
	}
}

func TestRateLimiter_BurstThenWait(t *testing.T) {
	rl := ai.NewRateLimiter(1)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, rl.Wait(ctx))
}
