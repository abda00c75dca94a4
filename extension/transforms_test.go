package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/repline/model/interpreter"
)

func TestLookupDefaultsToIdentity(t *testing.T) {
	transforms := NewTransforms()
	transform, err := transforms.Lookup(nil)
	assert.Nil(t, err)
	assert.EqualValues(t, "unchanged", transform.Apply("unchanged"))
}

func TestLookupUnknownTransform(t *testing.T) {
	transforms := NewTransforms()
	_, err := transforms.Lookup(&interpreter.HookRef{Name: "nope"})
	assert.NotNil(t, err)
}

func TestStripPatternOptions(t *testing.T) {
	transforms := NewTransforms()
	transform, err := transforms.Lookup(&interpreter.HookRef{
		Name: "stripPattern",
		With: map[string]interface{}{"pattern": `^Python \d`},
	})
	if !assert.Nil(t, err) {
		return
	}
	input := "Python 3.12.0 (main)\n>>> 1 + 1\n2"
	assert.EqualValues(t, ">>> 1 + 1\n2", transform.Apply(input))
}

func TestStripPatternInvalidOptions(t *testing.T) {
	transforms := NewTransforms()
	_, err := transforms.Lookup(&interpreter.HookRef{
		Name: "stripPattern",
		With: map[string]interface{}{"pattern": `([`},
	})
	assert.NotNil(t, err)
}

func TestTrimBlank(t *testing.T) {
	transforms := NewTransforms()
	transform, err := transforms.Lookup(&interpreter.HookRef{Name: "trimBlank"})
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, "a\n\nb", transform.Apply("\n\na\n\nb\n\n"))
}
