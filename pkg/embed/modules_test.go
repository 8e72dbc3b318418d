package embed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/pkg/embed"
)

func writeQuestFile(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestUseStatementLoadsLocalModuleOnce(t *testing.T) {
	dir := t.TempDir()
	writeQuestFile(t, dir, "counter.q", `
let hits = 0
fun bump()
  hits = hits + 1
  hits
end
`)
	main := writeQuestFile(t, dir, "main.q", `
use "counter" as counter
use "counter" as counter2
puts(counter.bump())
puts(counter2.bump())
counter.hits
`)
	res := embed.EvaluateScriptFile(main, nil)
	require.Nil(t, res.Exception)
	// the module body only runs once, so both aliases see the same bumped counter
	assert.Equal(t, int64(2), res.Value.(*object.Int).Value)
}

func TestUseStatementSelectedSymbols(t *testing.T) {
	dir := t.TempDir()
	writeQuestFile(t, dir, "math_helpers.q", `
fun square(x)
  x * x
end
let pi = 3
`)
	main := writeQuestFile(t, dir, "main.q", `
use "math_helpers" { square, pi }
square(4) + pi
`)
	res := embed.EvaluateScriptFile(main, nil)
	require.Nil(t, res.Exception)
	assert.Equal(t, int64(19), res.Value.(*object.Int).Value)
}

func TestUseStatementDetectsCircularImport(t *testing.T) {
	dir := t.TempDir()
	writeQuestFile(t, dir, "a.q", `use "b"`)
	writeQuestFile(t, dir, "b.q", `use "a"`)
	main := writeQuestFile(t, dir, "main.q", `use "a"`)

	res := embed.EvaluateScriptFile(main, nil)
	require.NotNil(t, res.Exception)
	assert.Equal(t, "ImportErr", res.Exception.ExcType.Name)
}

func TestUseStatementMissingModuleRaisesImportErr(t *testing.T) {
	dir := t.TempDir()
	main := writeQuestFile(t, dir, "main.q", `use "does_not_exist"`)

	res := embed.EvaluateScriptFile(main, nil)
	require.NotNil(t, res.Exception)
	assert.Equal(t, "ImportErr", res.Exception.ExcType.Name)
}

func TestUseStatementLoadsStdPackage(t *testing.T) {
	res := run(t, `
use "std/json" as json
let encoded = json.encode({"a": 1})
json.decode(encoded)["a"]
`)
	require.Nil(t, res.Exception)
	assert.Equal(t, float64(1), res.Value.(*object.Float).Value)
}
