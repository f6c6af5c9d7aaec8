// Package output provides report formatting.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"slices"
	"sync"

	"beer-recipe/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatTable is a human-readable terminal table
	FormatTable Format = "table"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// View selects what a human-readable formatter shows
type View int

const (
	// ViewBitterness shows IBU per recipe and, optionally, per hop
	ViewBitterness View = iota

	// ViewHopRates shows the largest hop addition per liter
	ViewHopRates
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Options tune formatter output
type Options struct {
	View     View
	ShowHops bool
}

// FormatterRegistry manages formatter registration
type FormatterRegistry interface {
	// Register adds a formatter constructor to the registry
	Register(format Format, build func(Options) Formatter) error

	// GetFormatter returns a formatter for a format type
	GetFormatter(format Format, opts Options) (Formatter, error)

	// Formats returns all registered formats
	Formats() []Format
}

// DefaultFormatterRegistry is the default registry implementation
type DefaultFormatterRegistry struct {
	mu       sync.RWMutex
	builders map[Format]func(Options) Formatter
}

// NewFormatterRegistry creates a registry holding the table and JSON formatters
func NewFormatterRegistry() *DefaultFormatterRegistry {
	r := &DefaultFormatterRegistry{builders: make(map[Format]func(Options) Formatter)}
	_ = r.Register(FormatTable, func(o Options) Formatter { return NewTableFormatter(o) })
	_ = r.Register(FormatJSON, func(Options) Formatter { return NewJSONFormatter() })
	return r
}

// Register adds a formatter constructor
func (r *DefaultFormatterRegistry) Register(format Format, build func(Options) Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[format]; exists {
		return errors.Newf(errors.TypeInternal, "formatter already registered: %s", format)
	}
	r.builders[format] = build
	return nil
}

// GetFormatter returns a formatter for the format
func (r *DefaultFormatterRegistry) GetFormatter(format Format, opts Options) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	build, ok := r.builders[format]
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "unknown output format %q", format)
	}
	return build(opts), nil
}

// Formats returns the registered formats, sorted
func (r *DefaultFormatterRegistry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]Format, 0, len(r.builders))
	for f := range r.builders {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}
