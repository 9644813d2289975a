package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtnitsch/lemma-crawler/models"
	"github.com/dtnitsch/lemma-crawler/pkg/caching"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordSeparator replaces internal whitespace in a word before it becomes a path segment.
const WordSeparator = "-"

// StatusError is returned for any non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch %s, status code: %d", e.URL, e.StatusCode)
}

// Fetcher performs one GET per word against a dictionary site.
// It never retries; a failed call is reported to the caller as an error.
type Fetcher struct {
	client      *http.Client
	baseURL     string
	userAgent   string
	maxBodySize int64
	cache       *caching.Cache
	logger      *slog.Logger
}

type Option func(*Fetcher)

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the response size; n <= 0 keeps the default.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBodySize = n
		}
	}
}

// WithCache serves 2xx bodies from c when fresh and stores new ones in it.
func WithCache(c *caching.Cache) Option {
	return func(f *Fetcher) {
		f.cache = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = l
	}
}

func NewFetcher(baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: models.DefaultTimeout},
		baseURL:     baseURL,
		userAgent:   models.DefaultUserAgent,
		maxBodySize: models.DefaultMaxBodySize,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NormalizeWord lowercases a word and joins its parts with WordSeparator.
func NormalizeWord(word string) string {
	fields := strings.Fields(cases.Lower(language.French).String(word))
	return strings.Join(fields, WordSeparator)
}

// URLFor returns the page URL for a word.
func (f *Fetcher) URLFor(word string) string {
	base := f.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(NormalizeWord(word))
}

// Fetch returns the raw page body for word.
func (f *Fetcher) Fetch(ctx context.Context, word string) ([]byte, error) {
	pageURL := f.URLFor(word)

	if f.cache != nil {
		if data, ok := f.cache.Get(pageURL); ok {
			f.logger.Debug("page served from cache", "word", word, "url", pageURL)
			return data, nil
		}
	}

	f.logger.Info("Requesting page", "word", word, "url", pageURL)
	body, err := f.GetHtmlBytes(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		if err := f.cache.Set(pageURL, body); err != nil {
			f.logger.Warn("Failed to cache page", "url", pageURL, "error", err)
		}
	}
	return body, nil
}

// GetHtmlBytes performs a single GET and returns the body of a 2xx response.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "fr,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	f.logger.Debug("Response", "url", pageURL, "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", f.maxBodySize)
	}
	return body, nil
}
