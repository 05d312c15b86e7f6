package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(retries int) *HTTPFetcher {
	return NewHTTPFetcher(Options{
		Retries: retries,
		Backoff: time.Millisecond,
		Referer: "https://example.test/",
	})
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		assert.Equal(t, "https://example.test/", r.Header.Get("Referer"))
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	body, err := newTestFetcher(0).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", body)
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("finally"))
	}))
	defer server.Close()

	body, err := newTestFetcher(2).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "finally", body)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetch_RetriesForbidden(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestFetcher(1).Fetch(context.Background(), server.URL)

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusForbidden, status.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := newTestFetcher(3).Fetch(context.Background(), server.URL)

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusNotFound, status.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_RotatesUserAgents(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("User-Agent"))
		mu.Unlock()
	}))
	defer server.Close()

	f := NewHTTPFetcher(Options{UserAgents: []string{"a", "b"}})
	for range 3 {
		_, err := f.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "b", "a"}, seen)
}

func TestFetch_ContextCancelledBetweenAttempts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	f := NewHTTPFetcher(Options{Retries: 5, Backoff: time.Hour})

	done := make(chan error, 1)
	go func() {
		_, err := f.Fetch(ctx, server.URL)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("fetch did not stop after cancellation")
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	_, err := newTestFetcher(3).Fetch(context.Background(), "://nope")
	assert.Error(t, err)
}

func TestDelay_Capped(t *testing.T) {
	f := NewHTTPFetcher(Options{Backoff: time.Second})

	assert.Equal(t, time.Second, f.delay(1))
	assert.Equal(t, 2*time.Second, f.delay(2))
	assert.Equal(t, maxBackoff, f.delay(10))
}
