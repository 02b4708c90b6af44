// Package ratelimit provides per-host token-bucket limiting and the jittered
// politeness delay applied between crawl units.
package ratelimit

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/talentboard/harvester/internal/metrics"
)

// Limiter manages one token bucket per host.
type Limiter struct {
	mu           sync.Mutex
	limiters     map[string]*rate.Limiter
	defaultRate  rate.Limit
	defaultBurst int
}

// Config holds limiter configuration.
type Config struct {
	DefaultRPS   float64
	DefaultBurst int
}

// New creates a Limiter. A non-positive RPS disables limiting.
func New(cfg Config) *Limiter {
	r := rate.Limit(cfg.DefaultRPS)
	if cfg.DefaultRPS <= 0 {
		r = rate.Inf
	}
	burst := cfg.DefaultBurst
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  r,
		defaultBurst: burst,
	}
}

// Wait blocks until a token is available for the URL's host.
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	host := "unknown"
	if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}

	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	start := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	if waited := time.Since(start); waited > time.Millisecond {
		metrics.ObserveRateLimitWait(host, waited)
	}
	return nil
}

// Jitter returns a politeness delay drawn uniformly from [base, 1.5*base].
// The randomized spread avoids a predictable request cadence.
func Jitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	spread := base / 2
	return base + time.Duration(rand.Int63n(int64(spread)+1))
}

// Sleep blocks for a jittered delay or until the context is canceled.
func Sleep(ctx context.Context, base time.Duration) error {
	d := Jitter(base)
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("delay interrupted: %w", ctx.Err())
	}
}
