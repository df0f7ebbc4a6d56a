// Package httpx provides the shared HTTP client for rankwatch fetches.
//
// NBA.com and the CDN endpoints reject obviously non-browser traffic, so
// every request carries browser-like headers. Fetched HTML documents are
// cached for the duration of a run to avoid refetching the selected article.
package httpx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/pfrederiksen/rankwatch/internal/logger"
)

const (
	acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptJSON = "application/json, text/plain, */*"

	// Season schedule payloads run to several megabytes; cap reads well
	// above that.
	maxBodyBytes = 32 << 20

	defaultPageTimeout   = 20 * time.Second
	defaultStaticTimeout = 30 * time.Second
)

// ErrStatus marks a non-200 upstream response.
var ErrStatus = errors.New("unexpected response status")

// Config controls client construction.
type Config struct {
	UserAgent     string
	PageTimeout   time.Duration
	StaticTimeout time.Duration
}

// Client fetches HTML pages and JSON feeds with browser-like headers and
// fixed per-call timeouts. Safe for sequential use; the pipeline never
// fetches concurrently.
type Client struct {
	httpClient    *http.Client
	userAgent     string
	pageTimeout   time.Duration
	staticTimeout time.Duration
	cache         *PageCache
}

// New creates a client. Zero config values fall back to defaults.
func New(cfg Config) *Client {
	pageTimeout := cfg.PageTimeout
	if pageTimeout <= 0 {
		pageTimeout = defaultPageTimeout
	}
	staticTimeout := cfg.StaticTimeout
	if staticTimeout <= 0 {
		staticTimeout = defaultStaticTimeout
	}

	return &Client{
		httpClient:    &http.Client{},
		userAgent:     cfg.UserAgent,
		pageTimeout:   pageTimeout,
		staticTimeout: staticTimeout,
		cache:         NewPageCache(),
	}
}

// GetDocument fetches an HTML page and parses it. Parsed documents are
// cached by URL for the rest of the run.
func (c *Client) GetDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	if doc := c.cache.Get(rawURL); doc != nil {
		logger.IncrCounter("fetch.cache_hits")
		return doc, nil
	}

	body, err := c.get(ctx, rawURL, acceptHTML, c.pageTimeout)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", rawURL)
	}

	c.cache.Set(rawURL, doc)
	return doc, nil
}

// GetJSON fetches a JSON endpoint and decodes it into target.
func (c *Client) GetJSON(ctx context.Context, rawURL string, target any) error {
	return c.getJSON(ctx, rawURL, target, c.pageTimeout)
}

// GetStaticJSON fetches a large static JSON payload (season schedules) using
// the longer static timeout.
func (c *Client) GetStaticJSON(ctx context.Context, rawURL string, target any) error {
	return c.getJSON(ctx, rawURL, target, c.staticTimeout)
}

func (c *Client) getJSON(ctx context.Context, rawURL string, target any, timeout time.Duration) error {
	body, err := c.get(ctx, rawURL, acceptJSON, timeout)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(body, target); err != nil {
		return errors.Wrapf(err, "decode %s", rawURL)
	}
	return nil
}

// Cache returns the client's page cache.
func (c *Client) Cache() *PageCache {
	return c.cache
}

func (c *Client) get(ctx context.Context, rawURL, accept string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	c.setHeaders(req, accept)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", rawURL)
	}
	defer resp.Body.Close()

	logger.IncrCounter("fetch.requests")
	logger.RecordTiming("fetch.request", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrStatus, "%s returned status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", rawURL)
	}
	return body, nil
}

func (c *Client) setHeaders(req *http.Request, accept string) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.nba.com/")
}
