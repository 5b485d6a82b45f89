// Package output handles machine-readable output formatting.
package output

import (
	"fmt"
	"io"
)

// Format represents output format types.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Writer serializes a single value for machine consumption.
type Writer interface {
	// Write outputs one value.
	Write(data any) error
}

// NewWriter creates a writer for the specified format. FormatText has no
// writer; the commands render text themselves.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
