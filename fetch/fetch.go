// Package fetch downloads pages for the scrapers. Extraction never calls it:
// the facade and the CLI fetch, then hand the markup to the extractors.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pevans/mediascrape/logger"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultBackoff  = 500 * time.Millisecond
	maxBackoff      = 10 * time.Second
	maxBodyBytes    = 10 << 20
	acceptHeader    = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguages = "id,en-US;q=0.7,en;q=0.3"
)

// DefaultUserAgents is the pool rotated through when Options.UserAgents is
// empty.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0",
}

// Fetcher retrieves the body of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// StatusError reports a response with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s (%s)", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Options configures an HTTPFetcher. Zero durations and an empty agent
// pool select the defaults.
type Options struct {
	// Timeout bounds a single attempt.
	Timeout time.Duration
	// Retries is the number of attempts after the first one.
	Retries int
	// Backoff is the wait before the first retry; it doubles per retry.
	Backoff time.Duration
	// UserAgents are rotated across requests.
	UserAgents []string
	// Referer is sent with every request when set.
	Referer string
	// Client replaces the default HTTP client (tests use this).
	Client *http.Client
	Logger logger.Logger
}

// HTTPFetcher fetches pages over HTTP with browser-like headers, rotating
// user agents and bounded retries. Transport errors, 403, 429 and 5xx
// responses are retried; any other status fails immediately.
type HTTPFetcher struct {
	client     *http.Client
	retries    int
	backoff    time.Duration
	userAgents []string
	referer    string
	log        logger.Logger

	next atomic.Uint64
}

// NewHTTPFetcher creates a fetcher from opts.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	f := &HTTPFetcher{
		client:     opts.Client,
		retries:    opts.Retries,
		backoff:    opts.Backoff,
		userAgents: opts.UserAgents,
		referer:    opts.Referer,
		log:        opts.Logger,
	}

	if f.client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		f.client = &http.Client{Timeout: timeout}
	}
	if f.retries < 0 {
		f.retries = 0
	}
	if f.backoff <= 0 {
		f.backoff = defaultBackoff
	}
	if len(f.userAgents) == 0 {
		f.userAgents = DefaultUserAgents
	}
	if f.log == nil {
		f.log = logger.NewNop()
	}

	return f
}

// Fetch returns the body of url. The context is checked between attempts,
// so a cancelled context stops the retry loop early.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			wait := f.delay(attempt)
			f.log.Warn("retrying fetch",
				logger.String("url", url),
				logger.Int("attempt", attempt+1),
				logger.Duration("wait", wait),
				logger.Error(lastErr),
			)

			select {
			case <-ctx.Done():
				return "", fmt.Errorf("fetch %s: %w", url, ctx.Err())
			case <-time.After(wait):
			}
		}

		req, err := f.newRequest(ctx, url)
		if err != nil {
			return "", err
		}

		body, err := f.do(req)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryable(err) {
			break
		}
	}

	return "", lastErr
}

func (f *HTTPFetcher) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent())
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguages)
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	if f.referer != "" {
		req.Header.Set("Referer", f.referer)
	}
	return req, nil
}

func (f *HTTPFetcher) do(req *http.Request) (string, error) {
	url := req.URL.String()
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(data), nil
}

func (f *HTTPFetcher) userAgent() string {
	n := f.next.Add(1) - 1
	return f.userAgents[n%uint64(len(f.userAgents))]
}

func (f *HTTPFetcher) delay(attempt int) time.Duration {
	d := f.backoff << (attempt - 1)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func retryable(err error) bool {
	var status *StatusError
	if errors.As(err, &status) {
		code := status.StatusCode
		return code == http.StatusForbidden || code == http.StatusTooManyRequests || code >= 500
	}
	return true
}
