// Package scanner defines the interface for recipe document scanners.
// Scanners turn files on disk into decoded source records.
// NO normalization or bitterness logic belongs here.
package scanner

import (
	"context"

	"beer-recipe/core/beerxml"
)

// Scanner reads recipe documents
type Scanner interface {
	// Name returns the scanner identifier
	Name() string

	// CanScan determines if this scanner can handle the input
	CanScan(ctx context.Context, input *Input) (bool, error)

	// Scan decodes the input into documents
	Scan(ctx context.Context, input *Input) (*ScanResult, error)
}

// Input is what the user pointed the tool at: a file or a directory
type Input struct {
	Path string `json:"path"`
}

// ScanResult contains the output of a scan operation
type ScanResult struct {
	// Documents are the decoded files, in scan order
	Documents []Document `json:"documents"`

	// Warnings are non-fatal issues encountered
	Warnings []ScanWarning `json:"warnings,omitempty"`

	// Errors are files that could not be decoded
	Errors []ScanError `json:"errors,omitempty"`
}

// Document is one decoded file. A BeerXML file may hold several recipes.
type Document struct {
	// File is the path relative to the scanned input
	File string `json:"file"`

	Recipes []beerxml.Recipe `json:"recipes"`
}

// RecipeCount returns the number of recipes across all documents
func (r *ScanResult) RecipeCount() int {
	n := 0
	for _, d := range r.Documents {
		n += len(d.Recipes)
	}
	return n
}

// ScanWarning represents a non-fatal scanning issue
type ScanWarning struct {
	// File is the file where the warning occurred
	File string `json:"file"`

	// Message describes the warning
	Message string `json:"message"`

	// Code is a warning code for programmatic handling
	Code string `json:"code,omitempty"`
}

// ScanError represents a file that failed to read or decode
type ScanError struct {
	// File is the file where the error occurred
	File string `json:"file"`

	// Message describes the error
	Message string `json:"message"`

	// Code is an error code for programmatic handling
	Code string `json:"code,omitempty"`

	// Err is the underlying error
	Err error `json:"-"`
}

// Error implements the error interface
func (e ScanError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e ScanError) Unwrap() error {
	return e.Err
}

// HasErrors returns true if there are any errors
func (r *ScanResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ScanResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}
