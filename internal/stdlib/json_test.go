package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

func callBuiltin(t *testing.T, mod *object.Module, name string, args ...object.Value) object.Value {
	t.Helper()
	export, ok := mod.Exports[name]
	require.True(t, ok, "module %s has no export %q", mod.Name, name)
	bi, ok := export.(*object.BuiltinFunction)
	require.True(t, ok)
	v, err := bi.Fn(args, nil)
	require.NoError(t, err)
	return v
}

func TestJsonEncodeDecodeRoundTrip(t *testing.T) {
	mod := stdlib.Json()

	d := object.NewDict()
	d.Set("name", &object.Str{Value: "quest"})
	d.Set("count", &object.Int{Value: 3})

	encoded := callBuiltin(t, mod, "encode", d)
	encodedStr, ok := encoded.(*object.Str)
	require.True(t, ok)

	decoded := callBuiltin(t, mod, "decode", encodedStr)
	decodedDict, ok := decoded.(*object.Dict)
	require.True(t, ok)

	name, ok := decodedDict.Get("name")
	require.True(t, ok)
	assert.Equal(t, "quest", name.(*object.Str).Value)

	count, ok := decodedDict.Get("count")
	require.True(t, ok)
	assert.Equal(t, float64(3), count.(*object.Float).Value, "JSON numbers decode as Float since encoding/json has no integer distinction")
}

func TestJsonDecodeRejectsMalformedInput(t *testing.T) {
	mod := stdlib.Json()
	export := mod.Exports["decode"].(*object.BuiltinFunction)
	_, err := export.Fn([]object.Value{&object.Str{Value: "{not json"}}, nil)
	assert.Error(t, err)
}
