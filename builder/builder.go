// Package builder turns a configuration document into a session factory.
package builder

import (
	"fmt"

	"mapperkit/binding"
	"mapperkit/config"
	"mapperkit/internal/logging"
	"mapperkit/session/defaults"
)

// Build registers every package listed in cfg and returns a factory over the
// resulting registry. A logger at cfg.LogLevel is installed first, so a
// WithLogger in opts takes precedence.
func Build(cfg *config.Configuration, opts ...defaults.Option) (*defaults.DefaultSqlSessionFactory, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("building session factory: %w", err)
	}

	registry := binding.NewMapperRegistry()
	for _, pkg := range cfg.Mappers.Packages {
		if err := registry.AddMappers(pkg); err != nil {
			return nil, fmt.Errorf("building session factory: %w", err)
		}
	}

	all := append([]defaults.Option{defaults.WithLogger(logging.New(level))}, opts...)

	return defaults.NewDefaultSqlSessionFactory(registry, all...), nil
}

// BuildFile loads the configuration at path and builds from it.
func BuildFile(path string, opts ...defaults.Option) (*defaults.DefaultSqlSessionFactory, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Build(cfg, opts...)
}
