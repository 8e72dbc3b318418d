package evaluator

import (
	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

// registerStdlib installs every built-in std/ package, named per spec.md
// §1's out-of-core library list and SPEC_FULL.md §4's domain-stack wiring.
func registerStdlib(l *ModuleLoader) {
	l.RegisterStd("std/json", func(*Evaluator) *object.Module { return stdlib.Json() })
	l.RegisterStd("std/yaml", func(*Evaluator) *object.Module { return stdlib.Yaml() })
	l.RegisterStd("std/uuid", func(*Evaluator) *object.Module { return stdlib.Uuid() })
	l.RegisterStd("std/db", func(*Evaluator) *object.Module { return stdlib.Db() })
	l.RegisterStd("std/bytes", func(*Evaluator) *object.Module { return stdlib.Bytes() })
	l.RegisterStd("std/http", func(*Evaluator) *object.Module { return stdlib.Http() })
	l.RegisterStd("std/crypto", func(*Evaluator) *object.Module { return stdlib.Crypto() })
	l.RegisterStd("std/template", func(*Evaluator) *object.Module { return stdlib.Template() })
	l.RegisterStd("std/ndarray", func(*Evaluator) *object.Module { return stdlib.Ndarray() })
	l.RegisterStd("std/grpc", func(*Evaluator) *object.Module { return stdlib.Grpc() })
}
