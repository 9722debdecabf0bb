package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAML(t *testing.T) {
	yaml := `
version: "1"
log_level: debug
mappers:
  packages:
    - mapperkit/examples/dao
    - " mapperkit/examples/other "
`

	cfg, err := Parse([]byte(yaml), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"mapperkit/examples/dao", "mapperkit/examples/other"}, cfg.Mappers.Packages)
}

func TestParse_TOML(t *testing.T) {
	doc := `
log_level = "warn"

[mappers]
packages = ["mapperkit/examples/dao"]
`

	cfg, err := Parse([]byte(doc), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"mapperkit/examples/dao"}, cfg.Mappers.Packages)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("mappers: {}\n"), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Mappers.Packages)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
		want   string
	}{
		{"bad yaml", "mappers: [", FormatYAML, "failed to parse config YAML"},
		{"unknown yaml key", "mapper: {}\n", FormatYAML, "failed to parse config YAML"},
		{"bad toml", "mappers = [", FormatTOML, "failed to parse config TOML"},
		{"unknown toml key", "colour = \"red\"\n", FormatTOML, "unknown keys"},
		{"version", "version: \"2\"\n", FormatYAML, "unsupported config version"},
		{"empty package", "mappers:\n  packages: [\"\"]\n", FormatYAML, "is empty"},
		{"duplicate", "mappers:\n  packages: [a, a]\n", FormatYAML, "twice"},
		{"format", "", Format("ini"), "unsupported config format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("mapperkit.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFor("conf/MAPPERKIT.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = FormatFor("mapperkit.json")
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapperkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mappers:\n  packages: [mapperkit/examples/dao]\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"mapperkit/examples/dao"}, cfg.Mappers.Packages)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParse_EmptyYAML(t *testing.T) {
	cfg, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "1", cfg.Version)
}
