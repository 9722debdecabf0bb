// Package config reads the document that tells the builder which mapper
// packages to register.
//
// A YAML document looks like:
//
//	version: "1"
//	log_level: debug
//	mappers:
//	  packages:
//	    - mapperkit/examples/dao
//
// The same keys work in TOML:
//
//	version = "1"
//	log_level = "debug"
//
//	[mappers]
//	packages = ["mapperkit/examples/dao"]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a document syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Configuration is the parsed document.
type Configuration struct {
	Version  string  `yaml:"version" toml:"version"`
	LogLevel string  `yaml:"log_level" toml:"log_level"`
	Mappers  Mappers `yaml:"mappers" toml:"mappers"`
}

// Mappers lists what to register.
type Mappers struct {
	// Packages are import paths whose cataloged interfaces are all registered.
	Packages []string `yaml:"packages" toml:"packages"`
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// LoadFile loads and parses a configuration file.
func LoadFile(path string) (*Configuration, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse parses data, applies defaults and validates the result.
func Parse(data []byte, format Format) (*Configuration, error) {
	var cfg Configuration

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse config TOML: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Configuration) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	for i, p := range cfg.Mappers.Packages {
		cfg.Mappers.Packages[i] = strings.TrimSpace(p)
	}
}

// Validate rejects documents the builder cannot act on.
func Validate(cfg *Configuration) error {
	if cfg.Version != "1" {
		return fmt.Errorf("unsupported config version %q", cfg.Version)
	}

	seen := make(map[string]bool, len(cfg.Mappers.Packages))
	for i, p := range cfg.Mappers.Packages {
		if p == "" {
			return fmt.Errorf("mappers.packages[%d] is empty", i)
		}

		if seen[p] {
			return fmt.Errorf("mappers.packages lists %q twice", p)
		}

		seen[p] = true
	}

	return nil
}
