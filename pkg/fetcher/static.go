package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/jmylchreest/goelunch/internal/logger"
)

// StaticFetcher retrieves the document with Colly. The speiseplan endpoint
// serves pre-rendered cached HTML, so a plain GET is all it takes.
// It implements the Fetcher interface.
type StaticFetcher struct {
	config Config
}

// NewStatic creates a new static fetcher.
func NewStatic(cfg Config) *StaticFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &StaticFetcher{config: cfg}
}

// Fetch retrieves the document at url.
func (f *StaticFetcher) Fetch(ctx context.Context, url string) (Content, error) {
	if err := ctx.Err(); err != nil {
		return Content{}, err
	}

	logger.Debug("fetch starting", "url", url)

	result := Content{
		URL:       url,
		FetchedAt: time.Now(),
	}

	// A fresh collector per request; this tool never crawls.
	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
	)
	c.SetRequestTimeout(f.config.Timeout)

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.Body = string(r.Body)
		logger.Debug("fetch response received",
			"status", r.StatusCode,
			"content_type", result.ContentType,
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		if r != nil && r.StatusCode != 0 && r.StatusCode != http.StatusOK {
			fetchErr = fmt.Errorf("%w: %d", ErrHTTPStatus, r.StatusCode)
			return
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(url); err != nil {
		logger.Debug("fetch visit failed", "url", url, "error", err)
		if fetchErr != nil {
			return result, fetchErr
		}
		return result, fmt.Errorf("failed to visit URL: %w", err)
	}

	if fetchErr != nil {
		return result, fetchErr
	}

	logger.Debug("fetch complete", "url", url, "body_size", len(result.Body))
	return result, nil
}
