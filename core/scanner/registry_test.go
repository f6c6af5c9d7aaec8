package scanner

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beer-recipe/internal/errors"
)

type stubScanner struct {
	name    string
	accepts bool
	err     error
	scanned int
}

func (s *stubScanner) Name() string { return s.name }

func (s *stubScanner) CanScan(ctx context.Context, input *Input) (bool, error) {
	return s.accepts, s.err
}

func (s *stubScanner) Scan(ctx context.Context, input *Input) (*ScanResult, error) {
	s.scanned++
	return &ScanResult{Documents: []Document{{File: s.name}}}, nil
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubScanner{name: "a"}))
	require.NoError(t, r.Register(&stubScanner{name: "b"}))

	err := r.Register(&stubScanner{name: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanner already registered: a")

	names := []string{}
	for _, s := range r.GetAll() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)

	_, ok := r.GetScanner("b")
	assert.True(t, ok)
	_, ok = r.GetScanner("c")
	assert.False(t, ok)
}

func TestRegistryDetectAndScan(t *testing.T) {
	broken := &stubScanner{name: "broken", accepts: true, err: stderrors.New("stat failed")}
	declines := &stubScanner{name: "declines"}
	first := &stubScanner{name: "first", accepts: true}
	second := &stubScanner{name: "second", accepts: true}

	r := NewRegistry()
	for _, s := range []Scanner{broken, declines, first, second} {
		require.NoError(t, r.Register(s))
	}

	result, err := r.DetectAndScan(context.Background(), &Input{Path: "recipes"})
	require.NoError(t, err)
	assert.Equal(t, "first", result.Documents[0].File)
	assert.Equal(t, 1, first.scanned)
	assert.Zero(t, second.scanned)
	assert.Zero(t, broken.scanned)
}

func TestRegistryNoScanner(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubScanner{name: "declines"}))

	_, err := r.DetectAndScan(context.Background(), &Input{Path: "notes.txt"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestScanResultCounts(t *testing.T) {
	r := &ScanResult{Documents: []Document{{File: "a.xml"}, {File: "b.xml"}}}
	assert.Zero(t, r.RecipeCount())
	assert.False(t, r.HasErrors())
	assert.False(t, r.HasWarnings())

	r.Errors = append(r.Errors, ScanError{File: "c.xml", Message: "bad", Err: stderrors.New("eof")})
	assert.True(t, r.HasErrors())
	assert.EqualError(t, r.Errors[0], "bad")
	assert.EqualError(t, stderrors.Unwrap(r.Errors[0]), "eof")
}
