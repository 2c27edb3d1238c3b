package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mailforge-ai/mailforge/retry"
	"github.com/mailforge-ai/mailforge/slogger"
)

var (
	DefaultMaxImages    = 20
	DefaultMaxBodyChars = 6000
	DefaultClient       = &http.Client{Timeout: 30 * time.Second}
)

// Some storefronts block non-browser clients, so requests carry a realistic
// browser identity.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
}

// Fetcher retrieves product pages and extracts signals from them.
type Fetcher struct {
	client       *http.Client
	maxImages    int
	maxBodyChars int
	maxRetries   int
	baseWait     time.Duration
	logger       slogger.Logger
}

// Option configures the Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) { f.client = client }
}

// WithMaxImages caps the number of images collected per page.
func WithMaxImages(n int) Option {
	return func(f *Fetcher) { f.maxImages = n }
}

// WithMaxBodyChars caps the extracted body text length.
func WithMaxBodyChars(n int) Option {
	return func(f *Fetcher) { f.maxBodyChars = n }
}

// WithMaxRetries sets the maximum number of request attempts.
func WithMaxRetries(n int) Option {
	return func(f *Fetcher) { f.maxRetries = n }
}

// WithRetryBaseWait sets the base wait between retries.
func WithRetryBaseWait(d time.Duration) Option {
	return func(f *Fetcher) { f.baseWait = d }
}

// WithLogger sets the logger.
func WithLogger(logger slogger.Logger) Option {
	return func(f *Fetcher) { f.logger = logger }
}

// New returns a Fetcher configured from the given options.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       DefaultClient,
		maxImages:    DefaultMaxImages,
		maxBodyChars: DefaultMaxBodyChars,
		maxRetries:   retry.DefaultMaxRetries,
		baseWait:     retry.DefaultBaseWait,
		logger:       slogger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the given URL and extracts signals from its HTML.
// Transient failures (transport errors, 429, 5xx) are retried with backoff;
// other HTTP failures are returned immediately as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Signals, error) {
	var doc *goquery.Document
	err := retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return &FetchError{Status: http.StatusBadRequest, Err: err}
		}
		for key, value := range browserHeaders {
			req.Header.Set(key, value)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			// Transport errors are left unwrapped so they are retried.
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &FetchError{Status: resp.StatusCode}
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return fmt.Errorf("parse html: %w", err)
		}
		return nil
	}, retry.WithMaxRetries(f.maxRetries), retry.WithBaseWait(f.baseWait))
	if err != nil {
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			err = &FetchError{Err: err}
		}
		f.logger.Warn("page fetch failed", "url", url, "error", err)
		return nil, err
	}

	signals := extractSignals(doc, url, f.maxImages, f.maxBodyChars)
	f.logger.Debug("page fetched",
		"url", url,
		"title", signals.Title,
		"images", len(signals.Images),
		"json_ld_blocks", len(signals.StructuredData),
		"body_chars", len(signals.BodyText))
	return signals, nil
}
