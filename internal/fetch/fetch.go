// Package fetch issues the outbound page requests for the monitor.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// UserAgent mimics a desktop browser; the reservation site serves
	// reduced pages to obvious bots.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultTimeout bounds each request; a slow candidate URL is
	// abandoned, not waited on.
	DefaultTimeout = 15 * time.Second
)

// Page is one successfully fetched candidate page.
type Page struct {
	URL        string
	StatusCode int
	Body       string
}

// Fetcher fetches candidate pages with a bounded timeout and
// browser-like headers.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with the given per-request timeout. A zero
// timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch performs a GET against url. Any transport failure or non-200
// status is returned as an error; callers treat it as a recoverable
// per-URL failure and move on.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return &Page{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
