// Package scanner - Registry for scanner implementations
package scanner

import (
	"context"
	"sync"

	"beer-recipe/internal/errors"
)

// Registry manages scanner registration and lookup
type Registry interface {
	// Register adds a scanner to the registry
	Register(scanner Scanner) error

	// GetScanner returns a scanner by name
	GetScanner(name string) (Scanner, bool)

	// GetAll returns all registered scanners
	GetAll() []Scanner

	// DetectAndScan finds the appropriate scanner and scans the input
	DetectAndScan(ctx context.Context, input *Input) (*ScanResult, error)
}

// DefaultRegistry is the default scanner registry implementation
type DefaultRegistry struct {
	mu       sync.RWMutex
	scanners map[string]Scanner
	order    []string // registration order is detection priority
}

// NewRegistry creates a new scanner registry
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		scanners: make(map[string]Scanner),
	}
}

// Register adds a scanner to the registry
func (r *DefaultRegistry) Register(scanner Scanner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := scanner.Name()
	if _, exists := r.scanners[name]; exists {
		return errors.Newf(errors.TypeInternal, "scanner already registered: %s", name)
	}

	r.scanners[name] = scanner
	r.order = append(r.order, name)
	return nil
}

// GetScanner returns a scanner by name
func (r *DefaultRegistry) GetScanner(name string) (Scanner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scanner, ok := r.scanners[name]
	return scanner, ok
}

// GetAll returns all registered scanners in registration order
func (r *DefaultRegistry) GetAll() []Scanner {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scanners := make([]Scanner, 0, len(r.order))
	for _, name := range r.order {
		scanners = append(scanners, r.scanners[name])
	}
	return scanners
}

// DetectAndScan runs the first scanner that can handle the input
func (r *DefaultRegistry) DetectAndScan(ctx context.Context, input *Input) (*ScanResult, error) {
	for _, s := range r.GetAll() {
		canScan, err := s.CanScan(ctx, input)
		if err != nil {
			continue // Skip scanners that error on detection
		}
		if canScan {
			return s.Scan(ctx, input)
		}
	}

	return nil, errors.NotFound("recipe documents", input.Path)
}

// Global default registry
var defaultRegistry = NewRegistry()

// Register adds a scanner to the default registry
func Register(scanner Scanner) error {
	return defaultRegistry.Register(scanner)
}

// GetDefault returns the default registry
func GetDefault() *DefaultRegistry {
	return defaultRegistry
}
