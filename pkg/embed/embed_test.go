package embed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/pkg/embed"
)

func run(t *testing.T, source string) embed.Result {
	t.Helper()
	return embed.Evaluate(source)
}

func TestClosureCapturesSharedScope(t *testing.T) {
	res := run(t, `
fun make_counter()
  let n = 0
  fun bump()
    n = n + 1
    n
  end
  bump
end

let counter = make_counter()
puts(counter())
puts(counter())
puts(counter())
`)
	require.Nil(t, res.Exception)
}

func TestDecoratorTransparencyDispatchesViaCall(t *testing.T) {
	res := run(t, `
type prefix_decorator
  func: Any
  prefix: Str

  fun _call(name)
    self.prefix + self.func(name)
  end
end

@prefix_decorator(prefix: "Dr. ")
fun greet(name)
  name
end

puts(greet("Smith"))
`)
	require.Nil(t, res.Exception)
}

func TestEnsureRunsAfterCatch(t *testing.T) {
	res := run(t, `
let log = []

try
  raise ValueErr.new("boom")
catch e: ValueErr
  log.push("caught")
ensure
  log.push("ensured")
end

puts(log.len())
`)
	require.Nil(t, res.Exception)
}

func TestUncaughtExceptionPropagatesWithType(t *testing.T) {
	res := run(t, `raise IndexErr.new("out of range")`)
	require.NotNil(t, res.Exception)
	assert.Equal(t, "IndexErr", res.Exception.ExcType.Name)
	assert.Equal(t, "out of range", res.Exception.Message)
}

func TestReRaiseInsideCatchPropagatesSameException(t *testing.T) {
	res := run(t, `
try
  raise ValueErr.new("original")
catch e
  raise
end
`)
	require.NotNil(t, res.Exception)
	assert.Equal(t, "original", res.Exception.Message)
}

func TestPersistentScopeAcrossEvaluateCalls(t *testing.T) {
	it := embed.New(nil, "", nil)
	res1 := it.Evaluate("let x = 41")
	require.Nil(t, res1.Exception)

	res2 := it.Evaluate("x + 1")
	require.Nil(t, res2.Exception)
	assert.Equal(t, int64(42), res2.Value.(*object.Int).Value)
}

func TestSyntaxErrorIsReportedAsException(t *testing.T) {
	res := run(t, "let = = =")
	require.NotNil(t, res.Exception)
	assert.Equal(t, "SyntaxErr", res.Exception.ExcType.Name)
}

func TestFormatUncaughtIncludesStackFrames(t *testing.T) {
	res := run(t, `
fun fail()
  raise RuntimeErr.new("deep failure")
end

fail()
`)
	require.NotNil(t, res.Exception)
	formatted := embed.FormatUncaught(res.Exception)
	assert.Contains(t, formatted, "RuntimeErr")
	assert.Contains(t, formatted, "deep failure")
}
