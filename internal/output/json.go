package output

import (
	"encoding/json"
	"io"
)

// JSONWriter writes pretty-printed JSON output.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return &JSONWriter{enc: enc}
}

// Write outputs one value as JSON.
func (w *JSONWriter) Write(data any) error {
	return w.enc.Encode(data)
}
