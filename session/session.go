// Package session defines the contract between callers and the mapper
// machinery: a SqlSession answers statements and hands out mapper proxies,
// a SqlSessionFactory opens sessions.
package session

import (
	"fmt"
	"reflect"
)

// SqlSession executes statements and produces mappers bound to itself.
type SqlSession interface {
	// SelectOne runs the statement identified by statement with parameter and
	// returns a single result.
	SelectOne(statement string, parameter any) (any, error)
	// GetMapper returns a proxy implementing mapperType, bound to this session.
	GetMapper(mapperType reflect.Type) (any, error)
}

// SqlSessionFactory opens ready-to-use sessions.
type SqlSessionFactory interface {
	OpenSession() SqlSession
}

// GetMapper is the typed form of SqlSession.GetMapper.
func GetMapper[T any](s SqlSession) (T, error) {
	var zero T

	raw, err := s.GetMapper(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	mapper, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("session: proxy %T does not implement %s", raw, reflect.TypeFor[T]())
	}

	return mapper, nil
}
