package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

func TestUuidParseRoundTripsThroughString(t *testing.T) {
	mod := stdlib.Uuid()
	fresh := callBuiltin(t, mod, "new")

	toStr, ok := stdlib.DomainMethod(fresh, "to_string")
	require.True(t, ok)
	strVal, err := toStr.Fn(nil, nil)
	require.NoError(t, err)

	reparsed := callBuiltin(t, mod, "parse", strVal)

	toStr2, _ := stdlib.DomainMethod(reparsed, "to_string")
	strVal2, _ := toStr2.Fn(nil, nil)

	assert.Equal(t, strVal.(*object.Str).Value, strVal2.(*object.Str).Value)
}

func TestUuidToBytesRoundTripsThroughFromBytes(t *testing.T) {
	mod := stdlib.Uuid()
	fresh := callBuiltin(t, mod, "new")

	toBytes, ok := stdlib.DomainMethod(fresh, "to_bytes")
	require.True(t, ok)
	bytesVal, err := toBytes.Fn(nil, nil)
	require.NoError(t, err)

	rebuilt := callBuiltin(t, mod, "from_bytes", bytesVal)

	toStr, _ := stdlib.DomainMethod(fresh, "to_string")
	freshStr, _ := toStr.Fn(nil, nil)
	toStr2, _ := stdlib.DomainMethod(rebuilt, "to_string")
	rebuiltStr, _ := toStr2.Fn(nil, nil)

	assert.Equal(t, freshStr.(*object.Str).Value, rebuiltStr.(*object.Str).Value)
}

func TestUuidParseRejectsGarbage(t *testing.T) {
	mod := stdlib.Uuid()
	export := mod.Exports["parse"].(*object.BuiltinFunction)
	_, err := export.Fn([]object.Value{&object.Str{Value: "not-a-uuid"}}, nil)
	assert.Error(t, err)
}
