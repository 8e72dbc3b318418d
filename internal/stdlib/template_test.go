package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

func TestTemplateRenderSubstitutesFields(t *testing.T) {
	mod := stdlib.Template()

	d := object.NewDict()
	d.Set("Name", &object.Str{Value: "Quest"})
	d.Set("Count", &object.Int{Value: 3})

	result := callBuiltin(t, mod, "render", &object.Str{Value: "{{.Name}} has {{.Count}} items"}, d)
	assert.Equal(t, "Quest has 3 items", result.(*object.Str).Value)
}

func TestTemplateRenderRejectsBadSyntax(t *testing.T) {
	mod := stdlib.Template()
	export := mod.Exports["render"].(*object.BuiltinFunction)
	_, err := export.Fn([]object.Value{&object.Str{Value: "{{.Name"}, object.NewDict()}, nil)
	assert.Error(t, err)
}
