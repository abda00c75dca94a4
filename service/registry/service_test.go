package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/repline/model/interpreter"
	"github.com/viant/repline/model/types"
)

func TestResolveAliasEqualsCanonical(t *testing.T) {
	service := New()
	viaAlias, err := service.Resolve("javascript.jsx")
	assert.Nil(t, err)
	direct, err := service.Resolve("javascript")
	assert.Nil(t, err)
	assert.EqualValues(t, direct, viaAlias)
}

func TestResolveEmptyFiletype(t *testing.T) {
	service := New()
	_, err := service.Resolve("")
	assert.True(t, errors.Is(err, types.ErrEmptyFiletype))
}

func TestResolveUnknown(t *testing.T) {
	service := New()
	_, err := service.Resolve("brainfuck")
	var unknown *types.UnknownInterpreterError
	if assert.True(t, errors.As(err, &unknown)) {
		assert.EqualValues(t, "brainfuck", unknown.Filetype)
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	service := New()
	first, err := service.Resolve("python")
	assert.Nil(t, err)
	first.Bin = "mutated"
	second, err := service.Resolve("python")
	assert.Nil(t, err)
	assert.EqualValues(t, "python3", second.Bin)
}

func TestMergeOverridesAndAliases(t *testing.T) {
	service := New()
	err := service.Merge([]byte(`
interpreters:
  python:
    bin: python3.13
    prompt: '^(>>>|\.\.\.) '
  fennel:
    bin: fennel
    prompt: '^>> '
aliases:
  fnl: fennel
`))
	if !assert.Nil(t, err) {
		return
	}
	descriptor, err := service.Resolve("python")
	assert.Nil(t, err)
	assert.EqualValues(t, "python3.13", descriptor.Bin)

	viaAlias, err := service.Resolve("fnl")
	assert.Nil(t, err)
	assert.EqualValues(t, "fennel", viaAlias.Bin)
}

func TestMergeRejectsIncompleteEntry(t *testing.T) {
	service := New(WithoutDefaults())
	err := service.Merge([]byte(`
interpreters:
  broken:
    bin: something
`))
	var config *types.ConfigError
	if assert.True(t, errors.As(err, &config)) {
		assert.EqualValues(t, []string{"prompt"}, config.Missing)
	}
	_, err = service.Resolve("broken")
	assert.NotNil(t, err)
}

func TestRegisterAndAlias(t *testing.T) {
	service := New(WithoutDefaults())
	service.Register("tcl", &interpreter.Descriptor{Bin: "tclsh", Prompt: `^% `})
	service.RegisterAlias("expect", "tcl")
	descriptor, err := service.Resolve("expect")
	assert.Nil(t, err)
	assert.EqualValues(t, "tclsh", descriptor.Bin)
	assert.EqualValues(t, []string{"tcl"}, service.Filetypes())
}
