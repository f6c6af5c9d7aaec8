package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders a report as indented JSON
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report
func (f *JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
