package binding

import (
	"reflect"

	"mapperkit/session"
)

// greeter is cataloged from init below; farewell never is.
type greeter interface {
	Greet(name string) (string, error)
}

type farewell interface {
	Bye() error
}

type greeterMapper struct{ proxy *MapperProxy }

func (m *greeterMapper) Greet(name string) (string, error) {
	return Result[string](m.proxy.Invoke("Greet", name))
}

type farewellMapper struct{ proxy *MapperProxy }

func (m *farewellMapper) Bye() error {
	_, err := m.proxy.Invoke("Bye")
	return err
}

func init() {
	Register[greeter](func(p *MapperProxy) greeter { return &greeterMapper{proxy: p} })
}

var (
	greeterType  = reflect.TypeFor[greeter]()
	farewellType = reflect.TypeFor[farewell]()
)

// recordingSession answers every statement with a canned value and keeps
// what it was asked.
type recordingSession struct {
	statements []string
	parameters []any
	result     any
	err        error
}

var _ session.SqlSession = (*recordingSession)(nil)

func (s *recordingSession) SelectOne(statement string, parameter any) (any, error) {
	s.statements = append(s.statements, statement)
	s.parameters = append(s.parameters, parameter)

	return s.result, s.err
}

func (s *recordingSession) GetMapper(reflect.Type) (any, error) {
	return nil, nil
}
