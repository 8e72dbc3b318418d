package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

func TestDbOpenExecuteQueryRoundTrips(t *testing.T) {
	mod := stdlib.Db()
	conn := callBuiltin(t, mod, "open", &object.Str{Value: ":memory:"})

	execute, ok := stdlib.DomainMethod(conn, "execute")
	require.True(t, ok)
	_, err := execute.Fn([]object.Value{
		&object.Str{Value: "create table items (id integer, name text)"},
	}, nil)
	require.NoError(t, err)

	_, err = execute.Fn([]object.Value{
		&object.Str{Value: "insert into items (id, name) values (?, ?)"},
		&object.Int{Value: 1},
		&object.Str{Value: "widget"},
	}, nil)
	require.NoError(t, err)

	query, ok := stdlib.DomainMethod(conn, "query")
	require.True(t, ok)
	rows, err := query.Fn([]object.Value{&object.Str{Value: "select id, name from items"}}, nil)
	require.NoError(t, err)

	arr, ok := rows.(*object.Array)
	require.True(t, ok)
	require.Equal(t, 1, arr.Len())

	row, _ := arr.Get(0)
	d, ok := row.(*object.Dict)
	require.True(t, ok)

	name, ok := d.Get("name")
	require.True(t, ok)
	assert.Equal(t, "widget", name.(*object.Str).Value)

	closeFn, ok := stdlib.DomainMethod(conn, "close")
	require.True(t, ok)
	_, err = closeFn.Fn(nil, nil)
	assert.NoError(t, err)
}

func TestDbOpenRejectsUnusableDriverArg(t *testing.T) {
	mod := stdlib.Db()
	export := mod.Exports["open"].(*object.BuiltinFunction)
	_, err := export.Fn([]object.Value{&object.Int{Value: 1}}, nil)
	assert.Error(t, err)
}
