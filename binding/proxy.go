package binding

import (
	"reflect"

	"mapperkit/session"
)

// MapperProxy is the dispatcher behind every adapter. It belongs to the
// session that created it and must not outlive it.
type MapperProxy struct {
	session    session.SqlSession
	mapperType reflect.Type
}

// NewMapperProxy binds a proxy for mapperType to s.
func NewMapperProxy(s session.SqlSession, mapperType reflect.Type) *MapperProxy {
	return &MapperProxy{session: s, mapperType: mapperType}
}

// Session returns the owning session.
func (p *MapperProxy) Session() session.SqlSession { return p.session }

// MapperType returns the interface this proxy serves.
func (p *MapperProxy) MapperType() reflect.Type { return p.mapperType }

// StatementID returns the id a method resolves to, e.g.
// "mapperkit/examples/dao.IUserDao.QueryUserName".
func (p *MapperProxy) StatementID(method string) string {
	return StatementID(p.mapperType, method)
}

// Invoke forwards a mapper method call to the session.
func (p *MapperProxy) Invoke(method string, args ...any) (any, error) {
	return p.session.SelectOne(p.StatementID(method), parameter(args))
}

// StatementID joins the mapper's qualified name and a method name.
func StatementID(mapperType reflect.Type, method string) string {
	if pkg := mapperType.PkgPath(); pkg != "" {
		return pkg + "." + mapperType.Name() + "." + method
	}

	return mapperType.Name() + "." + method
}

// parameter collapses call arguments into the single parameter a statement
// receives: nil for none, the value itself for one, the full list otherwise.
func parameter(args []any) any {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	default:
		return args
	}
}

// Result converts a dispatched value into a method's result type.
// A nil value yields the zero T.
func Result[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	out, ok := v.(T)
	if !ok {
		return zero, &ResultTypeError{Want: reflect.TypeFor[T](), Got: reflect.TypeOf(v)}
	}

	return out, nil
}
