// Package reportfeed loads the fishing report document from a URL or a local file.
package reportfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/fishing-report-dashboard/internal/domain"
)

// ErrUnexpectedStatus is returned when the report endpoint answers with a
// non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Feed fetches the current report document.
type Feed interface {
	Fetch(ctx context.Context) (domain.Document, error)
	Source() string
}

// New picks an HTTP feed for http(s) URLs and a file feed for anything else.
func New(source string, timeout time.Duration, logger *slog.Logger) Feed {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewHTTPFeed(source, timeout, logger)
	}
	return NewFileFeed(source, logger)
}

// HTTPFeed issues a single GET per fetch. There are no retries.
type HTTPFeed struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPFeed creates a feed for the given URL.
func NewHTTPFeed(url string, timeout time.Duration, logger *slog.Logger) *HTTPFeed {
	return &HTTPFeed{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Source returns the feed URL.
func (f *HTTPFeed) Source() string { return f.url }

// Fetch downloads and decodes the report document.
func (f *HTTPFeed) Fetch(ctx context.Context) (domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return domain.Document{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return domain.Document{}, fmt.Errorf("fetch reports: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return domain.Document{}, fmt.Errorf("fetch reports: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	doc, err := decode(resp.Body)
	if err != nil {
		return domain.Document{}, err
	}

	f.logger.Debug("reports fetched",
		"url", f.url,
		"reports", len(doc.Reports),
		"duration", time.Since(start),
	)
	return doc, nil
}

// FileFeed reads the report document from disk on every fetch.
type FileFeed struct {
	path   string
	logger *slog.Logger
}

// NewFileFeed creates a feed for a local JSON file.
func NewFileFeed(path string, logger *slog.Logger) *FileFeed {
	return &FileFeed{path: path, logger: logger}
}

// Source returns the file path.
func (f *FileFeed) Source() string { return f.path }

// Fetch reads and decodes the file.
func (f *FileFeed) Fetch(ctx context.Context) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("open reports: %w", err)
	}
	defer file.Close()

	doc, err := decode(file)
	if err != nil {
		return domain.Document{}, err
	}

	f.logger.Debug("reports read", "path", f.path, "reports", len(doc.Reports))
	return doc, nil
}

func decode(r io.Reader) (domain.Document, error) {
	var doc domain.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return domain.Document{}, fmt.Errorf("decode reports: %w", err)
	}
	return doc, nil
}
