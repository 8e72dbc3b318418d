package stdlib

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/quest-lang/quest/internal/object"
)

// dbConnection is the DbConnection domain value from spec.md's value table,
// backed by database/sql over modernc.org/sqlite (the teacher's declared
// pure-Go sqlite driver, avoiding a cgo dependency).
type dbConnection struct {
	conn *sql.DB
}

func (c *dbConnection) Type() object.ValueType { return "DbConnection" }
func (c *dbConnection) Truthy() bool           { return true }
func (c *dbConnection) Inspect() string        { return "<DbConnection>" }

func (c *dbConnection) method(name string) (*object.BuiltinFunction, bool) {
	switch name {
	case "execute":
		return fn("DbConnection.execute", func(args []object.Value) (object.Value, error) {
			sqlText, params, err := sqlArgs(args)
			if err != nil {
				return nil, err
			}
			res, err := c.conn.Exec(sqlText, params...)
			if err != nil {
				return nil, err
			}
			n, _ := res.RowsAffected()
			return &object.Int{Value: n}, nil
		}), true
	case "query":
		return fn("DbConnection.query", func(args []object.Value) (object.Value, error) {
			sqlText, params, err := sqlArgs(args)
			if err != nil {
				return nil, err
			}
			rows, err := c.conn.Query(sqlText, params...)
			if err != nil {
				return nil, err
			}
			defer rows.Close()
			cols, err := rows.Columns()
			if err != nil {
				return nil, err
			}
			out := []object.Value{}
			for rows.Next() {
				raw := make([]interface{}, len(cols))
				ptrs := make([]interface{}, len(cols))
				for i := range raw {
					ptrs[i] = &raw[i]
				}
				if err := rows.Scan(ptrs...); err != nil {
					return nil, err
				}
				d := object.NewDict()
				for i, col := range cols {
					d.Set(col, FromGo(raw[i]))
				}
				out = append(out, d)
			}
			return object.NewArray(out), nil
		}), true
	case "close":
		return fn("DbConnection.close", func(args []object.Value) (object.Value, error) {
			return object.NilInstance, c.conn.Close()
		}), true
	}
	return nil, false
}

func sqlArgs(args []object.Value) (string, []interface{}, error) {
	if len(args) < 1 {
		return "", nil, errArgs("DbConnection query", 1, len(args))
	}
	s, ok := args[0].(*object.Str)
	if !ok {
		return "", nil, errType("DbConnection query", "Str", args[0])
	}
	params := make([]interface{}, 0, len(args)-1)
	for _, a := range args[1:] {
		gv, err := ToGo(a)
		if err != nil {
			return "", nil, err
		}
		params = append(params, gv)
	}
	return s.Value, params, nil
}

// Db builds the std/db module: `db.open(path)` returning a DbConnection.
func Db() *object.Module {
	exports := map[string]object.Value{
		"open": fn("db.open", func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, errArgs("db.open", 1, len(args))
			}
			path, ok := args[0].(*object.Str)
			if !ok {
				return nil, errType("db.open", "Str", args[0])
			}
			conn, err := sql.Open("sqlite", path.Value)
			if err != nil {
				return nil, err
			}
			return &dbConnection{conn: conn}, nil
		}),
	}
	return &object.Module{Name: "db", Exports: exports}
}
