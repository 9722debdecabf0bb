package binding

import (
	"reflect"
	"sort"

	"mapperkit/internal/match"
	"mapperkit/session"
)

// MapperProxyFactory creates adapters for one mapper interface.
type MapperProxyFactory struct {
	mapperType reflect.Type
	ctor       AdapterFunc
}

// NewMapperProxyFactory creates a factory for mapperType using ctor.
func NewMapperProxyFactory(mapperType reflect.Type, ctor AdapterFunc) *MapperProxyFactory {
	return &MapperProxyFactory{mapperType: mapperType, ctor: ctor}
}

// MapperType returns the interface the factory serves.
func (f *MapperProxyFactory) MapperType() reflect.Type { return f.mapperType }

// NewInstance returns an adapter implementing the mapper interface, bound to s.
func (f *MapperProxyFactory) NewInstance(s session.SqlSession) any {
	return f.ctor(NewMapperProxy(s, f.mapperType))
}

// MapperRegistry maps mapper interfaces to their proxy factories.
//
// It is not synchronized: populate it first, then share it read-only.
type MapperRegistry struct {
	knownMappers map[reflect.Type]*MapperProxyFactory
}

// NewMapperRegistry creates an empty registry.
func NewMapperRegistry() *MapperRegistry {
	return &MapperRegistry{knownMappers: make(map[reflect.Type]*MapperProxyFactory)}
}

// AddMapper registers mapperType using the adapter from the catalog.
func (r *MapperRegistry) AddMapper(mapperType reflect.Type) error {
	if err := r.checkAddable(mapperType); err != nil {
		return err
	}

	ctor, ok := Lookup(mapperType)
	if !ok {
		return &NoAdapterError{Type: mapperType}
	}

	r.knownMappers[mapperType] = NewMapperProxyFactory(mapperType, ctor)

	return nil
}

// AddMapperFunc registers mapperType with an explicit adapter constructor,
// bypassing the catalog. Useful for hand-written adapters and tests.
func (r *MapperRegistry) AddMapperFunc(mapperType reflect.Type, ctor AdapterFunc) error {
	if err := r.checkAddable(mapperType); err != nil {
		return err
	}

	r.knownMappers[mapperType] = NewMapperProxyFactory(mapperType, ctor)

	return nil
}

// AddMappers registers every cataloged mapper declared in pkgPath.
// Nothing is added if any of them is already known.
func (r *MapperRegistry) AddMappers(pkgPath string) error {
	types := Package(pkgPath)
	if len(types) == 0 {
		suggestion, _ := match.Closest(pkgPath, Packages(), match.DefaultMinScore)
		return &PackageNotFoundError{PkgPath: pkgPath, Suggestion: suggestion}
	}

	for _, t := range types {
		if _, ok := r.knownMappers[t]; ok {
			return &AlreadyKnownError{Type: t}
		}
	}

	for _, t := range types {
		if err := r.AddMapper(t); err != nil {
			return err
		}
	}

	return nil
}

// GetMapper returns a proxy for mapperType bound to s.
func (r *MapperRegistry) GetMapper(mapperType reflect.Type, s session.SqlSession) (any, error) {
	factory, ok := r.knownMappers[mapperType]
	if !ok {
		return nil, &NotRegisteredError{Type: mapperType, Suggestion: r.closestMapper(mapperType)}
	}

	return factory.NewInstance(s), nil
}

// HasMapper reports whether mapperType is registered.
func (r *MapperRegistry) HasMapper(mapperType reflect.Type) bool {
	_, ok := r.knownMappers[mapperType]
	return ok
}

// Mappers returns the registered interfaces sorted by their qualified name.
func (r *MapperRegistry) Mappers() []reflect.Type {
	out := make([]reflect.Type, 0, len(r.knownMappers))
	for t := range r.knownMappers {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return StatementID(out[i], "") < StatementID(out[j], "")
	})

	return out
}

// closestMapper names the registered mapper most like t, or "".
func (r *MapperRegistry) closestMapper(t reflect.Type) string {
	if t == nil {
		return ""
	}

	names := make([]string, 0, len(r.knownMappers))
	for known := range r.knownMappers {
		names = append(names, known.String())
	}

	sort.Strings(names)

	suggestion, _ := match.Closest(t.String(), names, match.DefaultMinScore)

	return suggestion
}

func (r *MapperRegistry) checkAddable(mapperType reflect.Type) error {
	if mapperType == nil || mapperType.Kind() != reflect.Interface {
		return &NotInterfaceError{Type: mapperType}
	}

	if _, ok := r.knownMappers[mapperType]; ok {
		return &AlreadyKnownError{Type: mapperType}
	}

	return nil
}
