package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beer-recipe/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[output]
format = "json"
show_hops = true

[engine]
workers = 4

[measurements]
file = "brewday.hcl"

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowHops)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, "brewday.hcl", cfg.Measurements.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad format", "[output]\nformat = \"xml\"\n"},
		{"negative workers", "[engine]\nworkers = -1\n"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n"},
		{"unknown key", "[output]\ncolour = true\n"},
		{"not toml", "output = [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeConfig), "got %v", err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Output.ShowHops = true
	cfg.Engine.Workers = 2
	cfg.Measurements.File = "gravity.hcl"

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMarshal(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "[output]")
	assert.Contains(t, string(data), "format = 'table'")
	assert.Contains(t, string(data), "[logging]")
}

func TestGlobal(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { Set(prev) })

	cfg := Default()
	cfg.Engine.Workers = 8
	Set(cfg)
	assert.Equal(t, 8, Get().Engine.Workers)
}
