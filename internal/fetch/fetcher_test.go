package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingWaiter struct {
	calls atomic.Int64
	err   error
}

func (w *countingWaiter) Wait(_ context.Context, _ string) error {
	w.calls.Add(1)
	return w.err
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>listing</body></html>"))
	}))
	defer srv.Close()

	waiter := &countingWaiter{}
	client := NewClient(Config{UserAgent: "harvest-agent", Timeout: 5 * time.Second}, waiter)

	res, err := client.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(res.Body), "listing")
	require.False(t, res.Rendered)
	require.Positive(t, res.Duration)

	require.Equal(t, "harvest-agent", gotUA)
	require.Equal(t, "en-US,en;q=0.9", gotLang)
	require.Equal(t, int64(1), waiter.calls.Load())
}

func TestClient_Fetch_TooManyRequests(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{}, nil)
	_, err := client.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.True(t, netErr.RateLimited())
	require.Equal(t, http.StatusTooManyRequests, netErr.StatusCode)
}

func TestClient_Fetch_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{}, nil)
	_, err := client.Fetch(context.Background(), srv.URL)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.False(t, netErr.RateLimited())
	require.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
}

func TestClient_Fetch_WaiterError(t *testing.T) {
	t.Parallel()

	waiter := &countingWaiter{err: errors.New("limiter closed")}
	client := NewClient(Config{}, waiter)

	_, err := client.Fetch(context.Background(), "http://unused.invalid")
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate limit wait")
}

func TestClient_Fetch_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := NewClient(Config{}, nil)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := client.Fetch(ctx, srv.URL)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
