package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter_WaitUnlimited(t *testing.T) {
	t.Parallel()

	l := New(Config{})
	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), "https://example.com/jobs"))
	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestLimiter_WaitThrottlesPerHost(t *testing.T) {
	t.Parallel()

	l := New(Config{DefaultRPS: 20, DefaultBurst: 1})
	ctx := context.Background()

	require.NoError(t, l.Wait(ctx, "https://example.com/a"))
	start := time.Now()
	require.NoError(t, l.Wait(ctx, "https://example.com/b"))
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	// A different host has its own bucket and does not wait.
	start = time.Now()
	require.NoError(t, l.Wait(ctx, "https://other.example.org/a"))
	require.Less(t, time.Since(start), 20*time.Millisecond)
}

func TestLimiter_WaitCanceled(t *testing.T) {
	t.Parallel()

	l := New(Config{DefaultRPS: 0.001, DefaultBurst: 1})
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, l.Wait(ctx, "https://example.com/a"))
	cancel()
	require.Error(t, l.Wait(ctx, "https://example.com/b"))
}

func TestJitter_Bounds(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	for range 50 {
		d := Jitter(base)
		require.GreaterOrEqual(t, d, base)
		require.LessOrEqual(t, d, base+base/2)
	}
	require.Zero(t, Jitter(0))
}

func TestSleep_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, Sleep(ctx, time.Second))
}
