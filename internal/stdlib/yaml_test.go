package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

func TestYamlParseDump(t *testing.T) {
	mod := stdlib.Yaml()

	parsed := callBuiltin(t, mod, "parse", &object.Str{Value: "name: quest\ncount: 3\n"})
	d, ok := parsed.(*object.Dict)
	require.True(t, ok)

	name, ok := d.Get("name")
	require.True(t, ok)
	assert.Equal(t, "quest", name.(*object.Str).Value)

	count, ok := d.Get("count")
	require.True(t, ok)
	assert.Equal(t, int64(3), count.(*object.Int).Value)

	dumped := callBuiltin(t, mod, "dump", d)
	_, ok = dumped.(*object.Str)
	require.True(t, ok)
}

func TestYamlParseRejectsMalformedInput(t *testing.T) {
	mod := stdlib.Yaml()
	export := mod.Exports["parse"].(*object.BuiltinFunction)
	_, err := export.Fn([]object.Value{&object.Str{Value: "not: [valid: yaml"}}, nil)
	assert.Error(t, err)
}
