// Package fetch implements the PageFetcher interface.
// It performs a single HTTP GET against the random summary endpoint,
// decodes and validates the body, and reports every failure as one *Error.
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gaurav-prasanna/wikiroulette/core"
	"github.com/gaurav-prasanna/wikiroulette/core/endpoint"
)

// HTTPFetcher fetches random page summaries via HTTP.
// It keeps no state between calls.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithClient replaces the HTTP client. Useful for tests and custom transports.
func WithClient(client *http.Client) Option {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithUserAgent sets a User-Agent header. Empty leaves the client default.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// WithLogger sends request details to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(f *HTTPFetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates an HTTPFetcher. The default client uses the default
// transport and imposes no timeout; callers bound the call through ctx.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client: &http.Client{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves a random page summary from the given language edition.
func (f *HTTPFetcher) Fetch(ctx context.Context, language string) (*core.Page, error) {
	return f.FetchURL(ctx, endpoint.RandomSummary(language))
}

// FetchURL retrieves and validates a page summary from an already-built URL.
func (f *HTTPFetcher) FetchURL(ctx context.Context, rawURL string) (*core.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: rawURL, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	f.logger.Debug("request", "method", http.MethodGet, "url", rawURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()
	f.logger.Debug("response", "status", resp.Status, "url", rawURL)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Kind:       KindHTTPStatus,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: rawURL, Err: err}
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &Error{Kind: KindDecode, URL: rawURL, Err: err}
	}

	page, problems := validatePage(raw)
	if len(problems) > 0 {
		return nil, &Error{Kind: KindValidation, URL: rawURL, Fields: problems}
	}
	f.logger.Debug("decoded page", "title", page.Title, "bytes", len(body))
	return page, nil
}
