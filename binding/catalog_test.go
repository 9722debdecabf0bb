package binding

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_PanicsOnNonInterface(t *testing.T) {
	assert.PanicsWithError(t, "binding: type binding.greeterMapper is not an interface", func() {
		Register[greeterMapper](func(p *MapperProxy) greeterMapper { return greeterMapper{proxy: p} })
	})
}

func TestRegister_PanicsOnDuplicate(t *testing.T) {
	assert.PanicsWithError(t, "binding: adapter for binding.greeter registered twice", func() {
		Register[greeter](func(p *MapperProxy) greeter { return &greeterMapper{proxy: p} })
	})
}

func TestRegister_PanicsOnNilConstructor(t *testing.T) {
	assert.Panics(t, func() { Register[farewell](nil) })

	_, ok := Lookup(farewellType)
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	ctor, ok := Lookup(greeterType)
	require.True(t, ok)

	got := ctor(NewMapperProxy(&recordingSession{}, greeterType))
	assert.IsType(t, &greeterMapper{}, got)

	_, ok = Lookup(reflect.TypeFor[error]())
	assert.False(t, ok)
}

func TestPackage(t *testing.T) {
	assert.Equal(t, []reflect.Type{greeterType}, Package("mapperkit/binding"))
	assert.Empty(t, Package("example.com/none"))
}

func TestPackages(t *testing.T) {
	assert.Contains(t, Packages(), "mapperkit/binding")
}
