package binding

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// AddMapper / AddMapperFunc
// -----------------------------------------------------------------------------

// TestAddMapper_Cataloged verifies a cataloged interface can be added and served.
func TestAddMapper_Cataloged(t *testing.T) {
	r := NewMapperRegistry()
	require.NoError(t, r.AddMapper(greeterType))
	assert.True(t, r.HasMapper(greeterType))

	s := &recordingSession{result: "hi"}
	raw, err := r.GetMapper(greeterType, s)
	require.NoError(t, err)
	require.NotNil(t, raw)

	g, ok := raw.(greeter)
	require.True(t, ok, "proxy must implement the interface")

	got, err := g.Greet("ada")
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
	assert.Equal(t, []string{"mapperkit/binding.greeter.Greet"}, s.statements)
	assert.Equal(t, []any{"ada"}, s.parameters)
}

// TestAddMapper_NotInterface verifies non-interface types are a configuration error.
func TestAddMapper_NotInterface(t *testing.T) {
	r := NewMapperRegistry()

	for _, typ := range []reflect.Type{
		reflect.TypeFor[greeterMapper](),
		reflect.TypeFor[*greeterMapper](),
		reflect.TypeFor[string](),
		nil,
	} {
		err := r.AddMapper(typ)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotInterface)

		var nie *NotInterfaceError
		require.True(t, errors.As(err, &nie))
		assert.Equal(t, typ, nie.Type)
	}

	assert.Empty(t, r.Mappers())
}

// TestAddMapper_Duplicate verifies an interface can only be added once.
func TestAddMapper_Duplicate(t *testing.T) {
	r := NewMapperRegistry()
	require.NoError(t, r.AddMapper(greeterType))

	err := r.AddMapper(greeterType)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyKnown)
	assert.Contains(t, err.Error(), "already known")

	err = r.AddMapperFunc(greeterType, func(p *MapperProxy) any { return &greeterMapper{proxy: p} })
	assert.ErrorIs(t, err, ErrAlreadyKnown)
}

// TestAddMapper_NoAdapter verifies interfaces missing from the catalog are rejected.
func TestAddMapper_NoAdapter(t *testing.T) {
	r := NewMapperRegistry()

	err := r.AddMapper(farewellType)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoAdapter)
	assert.Contains(t, err.Error(), "mapper-gen")
	assert.False(t, r.HasMapper(farewellType))
}

// TestAddMapperFunc_HandWritten verifies explicit constructors bypass the catalog.
func TestAddMapperFunc_HandWritten(t *testing.T) {
	r := NewMapperRegistry()
	require.NoError(t, r.AddMapperFunc(farewellType, func(p *MapperProxy) any {
		return &farewellMapper{proxy: p}
	}))

	s := &recordingSession{err: errors.New("boom")}
	raw, err := r.GetMapper(farewellType, s)
	require.NoError(t, err)

	err = raw.(farewell).Bye()
	require.EqualError(t, err, "boom")
	assert.Equal(t, []any{nil}, s.parameters)
}

// TestAddMapperFunc_NotInterface verifies the interface check applies to explicit constructors.
func TestAddMapperFunc_NotInterface(t *testing.T) {
	r := NewMapperRegistry()
	err := r.AddMapperFunc(reflect.TypeFor[int](), func(*MapperProxy) any { return 0 })
	assert.ErrorIs(t, err, ErrNotInterface)
}

//
// -----------------------------------------------------------------------------
// AddMappers
// -----------------------------------------------------------------------------

// TestAddMappers_Package verifies every cataloged interface of a package is added.
func TestAddMappers_Package(t *testing.T) {
	r := NewMapperRegistry()
	require.NoError(t, r.AddMappers("mapperkit/binding"))

	assert.True(t, r.HasMapper(greeterType))
	assert.False(t, r.HasMapper(farewellType))
}

// TestAddMappers_UnknownPackage verifies an empty package is reported.
func TestAddMappers_UnknownPackage(t *testing.T) {
	r := NewMapperRegistry()

	err := r.AddMappers("example.com/nothing/here")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPackageNotFound)
	assert.Contains(t, err.Error(), `"example.com/nothing/here"`)
}

// TestAddMappers_Twice verifies re-adding a package fails without partial writes.
func TestAddMappers_Twice(t *testing.T) {
	r := NewMapperRegistry()
	require.NoError(t, r.AddMappers("mapperkit/binding"))

	before := r.Mappers()
	err := r.AddMappers("mapperkit/binding")
	assert.ErrorIs(t, err, ErrAlreadyKnown)
	assert.Equal(t, before, r.Mappers())
}

//
// -----------------------------------------------------------------------------
// GetMapper / Mappers
// -----------------------------------------------------------------------------

// TestGetMapper_NotRegistered verifies lookups for unknown interfaces fail immediately.
func TestGetMapper_NotRegistered(t *testing.T) {
	r := NewMapperRegistry()

	raw, err := r.GetMapper(greeterType, &recordingSession{})
	require.Error(t, err)
	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrMapperNotRegistered)

	var nre *NotRegisteredError
	require.True(t, errors.As(err, &nre))
	assert.Equal(t, greeterType, nre.Type)
	assert.Equal(t, "binding: type binding.greeter is not known to the mapper registry", err.Error())
}

// TestGetMapper_FreshProxyPerCall verifies each call builds a new proxy bound to the given session.
func TestGetMapper_FreshProxyPerCall(t *testing.T) {
	r := NewMapperRegistry()
	require.NoError(t, r.AddMapper(greeterType))

	s1 := &recordingSession{result: "one"}
	s2 := &recordingSession{result: "two"}

	g1, err := r.GetMapper(greeterType, s1)
	require.NoError(t, err)
	g2, err := r.GetMapper(greeterType, s2)
	require.NoError(t, err)

	assert.NotSame(t, g1, g2)
	assert.Same(t, s1, g1.(*greeterMapper).proxy.Session())
	assert.Same(t, s2, g2.(*greeterMapper).proxy.Session())
}

// TestMappers_Sorted verifies Mappers lists registered interfaces by qualified name.
func TestMappers_Sorted(t *testing.T) {
	r := NewMapperRegistry()
	require.NoError(t, r.AddMapper(greeterType))
	require.NoError(t, r.AddMapperFunc(farewellType, func(p *MapperProxy) any { return &farewellMapper{proxy: p} }))

	assert.Equal(t, []reflect.Type{farewellType, greeterType}, r.Mappers())
}

//
// -----------------------------------------------------------------------------
// Suggestions
// -----------------------------------------------------------------------------

type greeters interface {
	Greet(name string) (string, error)
}

// TestGetMapper_SuggestsCloseName verifies a miss names the closest registered mapper.
func TestGetMapper_SuggestsCloseName(t *testing.T) {
	r := NewMapperRegistry()
	require.NoError(t, r.AddMapperFunc(reflect.TypeFor[greeters](), func(p *MapperProxy) any {
		return &greeterMapper{proxy: p}
	}))

	_, err := r.GetMapper(greeterType, &recordingSession{})
	require.Error(t, err)

	var nre *NotRegisteredError
	require.ErrorAs(t, err, &nre)
	assert.Equal(t, "binding.greeters", nre.Suggestion)
	assert.Contains(t, err.Error(), `(did you mean "binding.greeters"?)`)
}

// TestAddMappers_SuggestsClosePackage verifies a misspelt package path names the cataloged one.
func TestAddMappers_SuggestsClosePackage(t *testing.T) {
	err := NewMapperRegistry().AddMappers("mapperkit/bindng")
	require.Error(t, err)

	var pnf *PackageNotFoundError
	require.ErrorAs(t, err, &pnf)
	assert.Equal(t, "mapperkit/binding", pnf.Suggestion)
	assert.Equal(t, `binding: no mappers cataloged for package "mapperkit/bindng" (did you mean "mapperkit/binding"?)`, err.Error())
}
