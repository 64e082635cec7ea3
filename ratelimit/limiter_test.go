package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andyle182810/twitchkit/ratelimit"
)

func TestBucketLimiter_GrantsWithinBurst(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(ratelimit.WithBurst(5))

	start := time.Now()

	for i := 0; i < 5; i++ {
		err := limiter.Wait(context.Background(), "helix")
		require.NoError(t, err)
	}

	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestBucketLimiter_BlocksPastBurst(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(
		ratelimit.WithRequestsPerMinute(600), // one permit every 100ms
		ratelimit.WithBurst(1),
	)

	err := limiter.Wait(context.Background(), "helix")
	require.NoError(t, err)

	start := time.Now()

	err = limiter.Wait(context.Background(), "helix")
	require.NoError(t, err)

	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestBucketLimiter_ContextCancellation(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(
		ratelimit.WithRequestsPerMinute(1),
		ratelimit.WithBurst(1),
	)

	err := limiter.Wait(context.Background(), "helix")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = limiter.Wait(ctx, "helix")

	require.Error(t, err)
	require.Contains(t, err.Error(), `bucket "helix"`)
}

func TestBucketLimiter_BucketsAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(
		ratelimit.WithRequestsPerMinute(1),
		ratelimit.WithBurst(1),
	)

	err := limiter.Wait(context.Background(), "helix")
	require.NoError(t, err)

	// The helix bucket is drained, but a fresh bucket has its own burst.
	start := time.Now()

	err = limiter.Wait(context.Background(), "auth")
	require.NoError(t, err)

	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestBucketLimiter_PerBucketOverride(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(
		ratelimit.WithRequestsPerMinute(1),
		ratelimit.WithBurst(1),
		ratelimit.WithBucket("fast", 6000, 10),
	)

	start := time.Now()

	for i := 0; i < 10; i++ {
		err := limiter.Wait(context.Background(), "fast")
		require.NoError(t, err)
	}

	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestNop_AlwaysGrants(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.Nop()

	for i := 0; i < 1000; i++ {
		err := limiter.Wait(context.Background(), "helix")
		require.NoError(t, err)
	}
}
