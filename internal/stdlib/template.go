package stdlib

import (
	"strings"
	"text/template"

	"github.com/quest-lang/quest/internal/object"
)

// Template builds the std/template module covering spec.md §1's "templates"
// entry with text/template, rendering against a Dict of named values
// converted to plain Go via ToGo.
func Template() *object.Module {
	exports := map[string]object.Value{
		"render": fn("template.render", func(args []object.Value) (object.Value, error) {
			if len(args) != 2 {
				return nil, errArgs("template.render", 2, len(args))
			}
			src, ok := args[0].(*object.Str)
			if !ok {
				return nil, errType("template.render", "Str", args[0])
			}
			d, ok := args[1].(*object.Dict)
			if !ok {
				return nil, errType("template.render", "Dict", args[1])
			}
			data, err := ToGo(d)
			if err != nil {
				return nil, err
			}
			tmpl, err := template.New("quest").Parse(src.Value)
			if err != nil {
				return nil, err
			}
			var sb strings.Builder
			if err := tmpl.Execute(&sb, data); err != nil {
				return nil, err
			}
			return &object.Str{Value: sb.String()}, nil
		}),
	}
	return &object.Module{Name: "template", Exports: exports}
}
