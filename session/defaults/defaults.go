// Package defaults provides the stock SqlSession and SqlSessionFactory.
//
// The session does not talk to a database yet: SelectOne answers every
// statement with a placeholder naming the statement and its parameter.
package defaults

import (
	"fmt"
	"log/slog"
	"reflect"

	"mapperkit/binding"
	"mapperkit/internal/logging"
	"mapperkit/internal/metrics"
	"mapperkit/session"
)

// Option configures a DefaultSqlSessionFactory.
type Option func(*DefaultSqlSessionFactory)

// WithLogger sets the logger sessions use. The default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(f *DefaultSqlSessionFactory) {
		if log != nil {
			f.log = log
		}
	}
}

// WithMetrics records dispatches on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(f *DefaultSqlSessionFactory) { f.metrics = c }
}

// DefaultSqlSessionFactory opens DefaultSqlSessions over a mapper registry.
type DefaultSqlSessionFactory struct {
	registry *binding.MapperRegistry
	log      *slog.Logger
	metrics  *metrics.Collector
}

var _ session.SqlSessionFactory = (*DefaultSqlSessionFactory)(nil)

// NewDefaultSqlSessionFactory creates a factory serving the mappers in registry.
// A nil registry is treated as empty.
func NewDefaultSqlSessionFactory(registry *binding.MapperRegistry, opts ...Option) *DefaultSqlSessionFactory {
	if registry == nil {
		registry = binding.NewMapperRegistry()
	}

	f := &DefaultSqlSessionFactory{
		registry: registry,
		log:      logging.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	f.metrics.SetMappers(len(registry.Mappers()))

	return f
}

// Registry returns the registry sessions resolve mappers from.
func (f *DefaultSqlSessionFactory) Registry() *binding.MapperRegistry { return f.registry }

// OpenSession implements session.SqlSessionFactory.
func (f *DefaultSqlSessionFactory) OpenSession() session.SqlSession {
	return &DefaultSqlSession{
		registry: f.registry,
		log:      f.log,
		metrics:  f.metrics,
	}
}

// DefaultSqlSession resolves mappers through the registry and answers
// statements with a placeholder.
type DefaultSqlSession struct {
	registry *binding.MapperRegistry
	log      *slog.Logger
	metrics  *metrics.Collector
}

var _ session.SqlSession = (*DefaultSqlSession)(nil)

// SelectOne implements session.SqlSession.
func (s *DefaultSqlSession) SelectOne(statement string, parameter any) (any, error) {
	s.log.Debug("select one", "statement", statement, "parameter", parameter)
	s.metrics.ObserveStatement(statement)

	return fmt.Sprintf("proxied! method: %s parameter: %v", statement, parameter), nil
}

// GetMapper implements session.SqlSession.
func (s *DefaultSqlSession) GetMapper(mapperType reflect.Type) (any, error) {
	return s.registry.GetMapper(mapperType, s)
}
