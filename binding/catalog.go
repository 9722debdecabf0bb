package binding

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// AdapterFunc builds the concrete value implementing a mapper interface
// around a proxy.
type AdapterFunc func(p *MapperProxy) any

// catalog holds every adapter announced by init() in this process.
// Writes happen during package initialization, reads afterwards.
var catalog = struct {
	sync.RWMutex
	adapters map[reflect.Type]AdapterFunc
}{adapters: make(map[reflect.Type]AdapterFunc)}

// Register announces the adapter constructor for mapper interface T.
// It is meant to be called from init() in generated code and panics if T is
// not an interface or already has an adapter.
func Register[T any](ctor func(p *MapperProxy) T) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		panic(&NotInterfaceError{Type: t})
	}

	if ctor == nil {
		panic(fmt.Errorf("binding: nil adapter constructor for %s", t))
	}

	catalog.Lock()
	defer catalog.Unlock()

	if _, ok := catalog.adapters[t]; ok {
		panic(fmt.Errorf("binding: adapter for %s registered twice", t))
	}

	catalog.adapters[t] = func(p *MapperProxy) any { return ctor(p) }
}

// Lookup returns the adapter constructor registered for t.
func Lookup(t reflect.Type) (AdapterFunc, bool) {
	catalog.RLock()
	defer catalog.RUnlock()

	ctor, ok := catalog.adapters[t]

	return ctor, ok
}

// Package returns the cataloged mapper interfaces declared in pkgPath,
// sorted by name.
func Package(pkgPath string) []reflect.Type {
	catalog.RLock()
	defer catalog.RUnlock()

	var out []reflect.Type
	for t := range catalog.adapters {
		if t.PkgPath() == pkgPath {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

// Packages returns the distinct package paths with cataloged mappers, sorted.
func Packages() []string {
	catalog.RLock()
	defer catalog.RUnlock()

	seen := make(map[string]bool)
	for t := range catalog.adapters {
		seen[t.PkgPath()] = true
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}

	sort.Strings(out)

	return out
}
