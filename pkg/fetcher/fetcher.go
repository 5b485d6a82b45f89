// Package fetcher retrieves the daily speiseplan document from the
// Studentenwerk Göttingen website.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// URL template for the cached per-day document that lists every canteen.
const menuURLTemplate = "https://www.studierendenwerk-goettingen.de/fileadmin/templates/php/mensaspeiseplan/cached/%s/%s/alle.html"

// ErrHTTPStatus reports a non-200 response from the menu endpoint.
// Check with errors.Is.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// MenuURL builds the document URL for a language code and a day.
func MenuURL(lang string, day time.Time) string {
	return fmt.Sprintf(menuURLTemplate, lang, day.Format("2006-01-02"))
}

// Content represents a fetched document.
type Content struct {
	URL         string
	Body        string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// Fetcher abstracts document retrieval so the command layer can be tested
// against a stub instead of the live site.
type Fetcher interface {
	// Fetch retrieves the document at url.
	Fetch(ctx context.Context, url string) (Content, error)
}

// Config holds common fetcher configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: "goelunch/1.0 (https://github.com/jmylchreest/goelunch)",
		Timeout:   30 * time.Second,
	}
}
