package binding

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrNotInterface is returned when a non-interface type is offered as a mapper.
	ErrNotInterface = errors.New("binding: mapper type is not an interface")

	// ErrAlreadyKnown is returned when a mapper is added to a registry twice.
	ErrAlreadyKnown = errors.New("binding: mapper already known to the registry")

	// ErrMapperNotRegistered is returned when a proxy is requested for a mapper
	// the registry does not know.
	ErrMapperNotRegistered = errors.New("binding: mapper not registered")

	// ErrNoAdapter is returned when an interface has no adapter in the catalog.
	ErrNoAdapter = errors.New("binding: no adapter for mapper")

	// ErrPackageNotFound is returned by AddMappers when the catalog holds no
	// mapper for the requested package.
	ErrPackageNotFound = errors.New("binding: no mappers in package")

	// ErrResultType is returned when a dispatched result cannot be converted to
	// the mapper method's result type.
	ErrResultType = errors.New("binding: unexpected result type")
)

// typeName renders t for error messages; nil types print as "<nil>".
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

func didYouMean(suggestion string) string {
	if suggestion == "" {
		return ""
	}

	return " (did you mean " + strconv.Quote(suggestion) + "?)"
}

// NotInterfaceError reports a mapper type whose kind is not reflect.Interface.
type NotInterfaceError struct{ Type reflect.Type }

// Error implements the error interface.
func (e *NotInterfaceError) Error() string {
	// Example: binding: type dao.UserDao is not an interface
	return "binding: type " + typeName(e.Type) + " is not an interface"
}

// Is matches ErrNotInterface.
func (e *NotInterfaceError) Is(target error) bool { return target == ErrNotInterface }

// AlreadyKnownError reports a duplicate registration.
type AlreadyKnownError struct{ Type reflect.Type }

// Error implements the error interface.
func (e *AlreadyKnownError) Error() string {
	return "binding: type " + typeName(e.Type) + " is already known to the mapper registry"
}

// Is matches ErrAlreadyKnown.
func (e *AlreadyKnownError) Is(target error) bool { return target == ErrAlreadyKnown }

// NotRegisteredError reports a lookup for an unknown mapper.
type NotRegisteredError struct {
	Type reflect.Type
	// Suggestion is the closest registered mapper name, if any is close.
	Suggestion string
}

// Error implements the error interface.
func (e *NotRegisteredError) Error() string {
	return "binding: type " + typeName(e.Type) + " is not known to the mapper registry" + didYouMean(e.Suggestion)
}

// Is matches ErrMapperNotRegistered.
func (e *NotRegisteredError) Is(target error) bool { return target == ErrMapperNotRegistered }

// NoAdapterError reports an interface that no adapter was registered for.
type NoAdapterError struct{ Type reflect.Type }

// Error implements the error interface.
func (e *NoAdapterError) Error() string {
	return "binding: no adapter registered for " + typeName(e.Type) + " (run mapper-gen on its package)"
}

// Is matches ErrNoAdapter.
func (e *NoAdapterError) Is(target error) bool { return target == ErrNoAdapter }

// PackageNotFoundError reports a package path with no cataloged mappers.
type PackageNotFoundError struct {
	PkgPath string
	// Suggestion is the closest cataloged package path, if any is close.
	Suggestion string
}

// Error implements the error interface.
func (e *PackageNotFoundError) Error() string {
	// Example: binding: no mappers cataloged for package "app/doa" (did you mean "app/dao"?)
	return "binding: no mappers cataloged for package " + strconv.Quote(e.PkgPath) + didYouMean(e.Suggestion)
}

// Is matches ErrPackageNotFound.
func (e *PackageNotFoundError) Is(target error) bool { return target == ErrPackageNotFound }

// ResultTypeError reports a dispatched value of the wrong type.
type ResultTypeError struct {
	Want reflect.Type
	Got  reflect.Type
}

// Error implements the error interface.
func (e *ResultTypeError) Error() string {
	return "binding: result of type " + typeName(e.Got) + " is not assignable to " + typeName(e.Want)
}

// Is matches ErrResultType.
func (e *ResultTypeError) Is(target error) bool { return target == ErrResultType }
