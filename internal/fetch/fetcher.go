// Package fetch issues rate-limited HTTP GETs with browser-like headers
// against the source network's search and detail endpoints.
package fetch

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

// Result is the raw markup returned by a single fetch.
type Result struct {
	URL        string
	StatusCode int
	Body       []byte
	Duration   time.Duration
	Rendered   bool
}

// Fetcher retrieves a single document. Implementations do not retry; retry
// policy belongs to the orchestrator.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Result, error)
}

// NetworkError reports a transport failure or a non-2xx response.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RateLimited reports whether the source answered with HTTP 429.
func (e *NetworkError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Waiter blocks until the caller may issue the next request.
type Waiter interface {
	Wait(ctx context.Context, url string) error
}

// Config controls Client behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

const defaultTimeout = 30 * time.Second

// defaultUserAgent mimics a current desktop Chrome build; the source blocks
// obviously robotic agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// browserHeaders are sent with every request alongside the user agent.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Cache-Control":             "no-cache",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
}

// Client implements Fetcher with a colly collector and an optional
// rate-limit waiter consulted before every request.
type Client struct {
	cfg           Config
	limiter       Waiter
	baseCollector *colly.Collector
}

// NewClient builds a Client. limiter may be nil.
func NewClient(cfg Config, limiter Waiter) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	c := colly.NewCollector(colly.Async(false))
	c.WithTransport(newHTTPTransport())
	return &Client{
		cfg:           cfg,
		limiter:       limiter,
		baseCollector: c,
	}
}

// Fetch executes a single GET and returns the raw markup. Non-2xx responses
// and transport failures are surfaced as *NetworkError.
func (c *Client) Fetch(ctx context.Context, url string) (Result, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, url); err != nil {
			return Result{}, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var (
		result   Result
		fetchErr error
	)
	start := time.Now()

	collector := c.baseCollector.Clone()
	collector.UserAgent = c.cfg.UserAgent
	collector.IgnoreRobotsTxt = true
	collector.SetRequestTimeout(c.cfg.Timeout)

	collector.OnRequest(func(r *colly.Request) {
		for key, value := range browserHeaders {
			r.Headers.Set(key, value)
		}
	})
	collector.OnResponse(func(r *colly.Response) {
		result = Result{
			URL:        r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Body:       append([]byte(nil), r.Body...),
			Duration:   time.Since(start),
		}
	})
	collector.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = &NetworkError{URL: url, StatusCode: status, Err: err}
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	select {
	case <-ctx.Done():
		return Result{}, &NetworkError{URL: url, Err: ctx.Err()}
	case err := <-done:
		if fetchErr != nil {
			return Result{}, fetchErr
		}
		if err != nil {
			return Result{}, &NetworkError{URL: url, Err: err}
		}
		return result, nil
	}
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
