package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
)

func TestEnvironmentDeclareAndGet(t *testing.T) {
	env := object.NewEnvironment()
	env.Declare("x", &object.Int{Value: 1})

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*object.Int).Value)

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestEnclosedEnvironmentWalksOuter(t *testing.T) {
	outer := object.NewEnvironment()
	outer.Declare("shared", &object.Int{Value: 10})
	inner := object.NewEnclosedEnvironment(outer)

	v, ok := inner.Get("shared")
	require.True(t, ok)
	assert.Equal(t, int64(10), v.(*object.Int).Value)

	inner.Declare("shared", &object.Int{Value: 20})
	innerV, _ := inner.Get("shared")
	outerV, _ := outer.Get("shared")
	assert.Equal(t, int64(20), innerV.(*object.Int).Value)
	assert.Equal(t, int64(10), outerV.(*object.Int).Value, "Declare shadows in the inner frame, it does not mutate outer")
}

func TestUpdateAssignsOwningFrame(t *testing.T) {
	outer := object.NewEnvironment()
	outer.Declare("counter", &object.Int{Value: 0})
	inner := object.NewEnclosedEnvironment(outer)

	ok := inner.Update("counter", &object.Int{Value: 1})
	require.True(t, ok, "Update should find counter in the outer frame")

	v, _ := outer.Get("counter")
	assert.Equal(t, int64(1), v.(*object.Int).Value)
}

func TestUpdateReportsFalseForUndeclaredName(t *testing.T) {
	env := object.NewEnvironment()
	assert.False(t, env.Update("never_declared", object.NilInstance))
}

func TestLocalsIgnoresOuterFrames(t *testing.T) {
	outer := object.NewEnvironment()
	outer.Declare("a", &object.Int{Value: 1})
	inner := object.NewEnclosedEnvironment(outer)
	inner.Declare("b", &object.Int{Value: 2})

	locals := inner.Locals()
	assert.Len(t, locals, 1)
	_, hasB := locals["b"]
	_, hasA := locals["a"]
	assert.True(t, hasB)
	assert.False(t, hasA, "Locals must not leak outer-frame bindings into a module's export set")
}
