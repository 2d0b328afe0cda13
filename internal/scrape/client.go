// Package scrape implements the web scraper exercise: a single GET against
// a static page and extraction of its title element.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client fetches pages for the scraper exercise
type Client struct {
	defaultURL string
	httpClient *http.Client
}

// Config holds client configuration
type Config struct {
	URL     string
	Timeout time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		URL:     "https://example.com",
		Timeout: 15 * time.Second,
	}
}

// NewClient creates a new scrape client
func NewClient(cfg Config) *Client {
	return &Client{
		defaultURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Fetch performs one GET and returns the raw body. An empty url falls back
// to the configured default.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		url = c.defaultURL
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	return body, nil
}

// FetchTitle performs one GET and returns the text of the page's title
// element. An empty url falls back to the configured default.
func (c *Client) FetchTitle(ctx context.Context, url string) (string, error) {
	if url == "" {
		url = c.defaultURL
	}

	body, err := c.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	title, ok := extractTitle(string(body))
	if !ok {
		return "", fmt.Errorf("no title element found in %s", url)
	}

	return title, nil
}

// extractTitle scans HTML for the first <title> element. The tag search is
// ASCII-case-insensitive on the original string; a full Unicode lowercase
// pass can change byte offsets and misalign the slice.
func extractTitle(html string) (string, bool) {
	start := indexASCIIFold(html, "<title")
	if start == -1 {
		return "", false
	}

	// The tag may carry attributes, find the closing bracket
	open := strings.IndexByte(html[start:], '>')
	if open == -1 {
		return "", false
	}
	start += open + 1

	end := indexASCIIFold(html[start:], "</title>")
	if end == -1 {
		return "", false
	}

	return strings.TrimSpace(html[start : start+end]), true
}

// indexASCIIFold returns the first index of substr in s, ignoring ASCII case
func indexASCIIFold(s, substr string) int {
	n := len(substr)
	if n == 0 {
		return 0
	}

	for i := 0; i+n <= len(s); i++ {
		if equalASCIIFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

// equalASCIIFold compares two equal-length strings, ignoring ASCII case
func equalASCIIFold(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
