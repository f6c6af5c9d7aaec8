// Package beerxml provides the BeerXML file scanner.
package beerxml

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"beer-recipe/core/beerxml"
	"beer-recipe/core/scanner"
	"beer-recipe/internal/errors"
	"beer-recipe/internal/logging"
)

// Scanner implements the scanner.Scanner interface for BeerXML files
type Scanner struct{}

// NewScanner creates a new BeerXML scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Name returns the scanner name
func (s *Scanner) Name() string {
	return "beerxml"
}

// CanScan accepts a .xml file, or a directory holding at least one
func (s *Scanner) CanScan(ctx context.Context, input *scanner.Input) (bool, error) {
	info, err := os.Stat(input.Path)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return isBeerXML(input.Path), nil
	}

	found := false
	err = filepath.WalkDir(input.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isBeerXML(path) {
			found = true
			return filepath.SkipAll // Found one, that's enough
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Scan decodes every BeerXML file under the input. Files that fail to
// decode are reported in ScanResult.Errors; they do not stop the scan.
func (s *Scanner) Scan(ctx context.Context, input *scanner.Input) (*scanner.ScanResult, error) {
	files, err := s.listFiles(input.Path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to walk "+input.Path, err)
	}

	result := &scanner.ScanResult{
		Documents: make([]scanner.Document, 0, len(files)),
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel := relativeTo(input.Path, file)
		recipes, err := decodeFile(file)
		if err != nil {
			logging.Debug("Failed to decode recipe file", zap.String("file", rel), zap.Error(err))
			result.Errors = append(result.Errors, scanError(rel, err))
			continue
		}
		if len(recipes) == 0 {
			result.Warnings = append(result.Warnings, scanner.ScanWarning{
				File:    rel,
				Message: "document contains no recipes",
				Code:    "EMPTY_DOCUMENT",
			})
			continue
		}

		logging.Debug("Decoded recipe file", zap.String("file", rel), zap.Int("recipes", len(recipes)))
		result.Documents = append(result.Documents, scanner.Document{File: rel, Recipes: recipes})
	}

	return result, nil
}

// listFiles returns the BeerXML files under root in lexical order.
func (s *Scanner) listFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isBeerXML(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func decodeFile(path string) ([]beerxml.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read file", err)
	}
	defer f.Close()

	return beerxml.Decode(f)
}

func scanError(file string, err error) scanner.ScanError {
	code := string(errors.TypeInternal)
	if t, ok := errors.TypeOf(err); ok {
		code = string(t)
	}
	return scanner.ScanError{
		File:    file,
		Message: err.Error(),
		Code:    code,
		Err:     err,
	}
}

func isBeerXML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}

func relativeTo(root, file string) string {
	if root == file {
		return filepath.Base(file)
	}
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return file
	}
	return rel
}
