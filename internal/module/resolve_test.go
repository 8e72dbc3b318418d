package module_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/module"
)

func TestIsStdRecognizesPrefix(t *testing.T) {
	assert.True(t, module.IsStd("std/json"))
	assert.False(t, module.IsStd("./helpers"))
	assert.False(t, module.IsStd("stdnope"))
}

func TestResolveFindsRelativeFileWithImplicitExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helpers.q")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1\n"), 0o644))

	resolved, err := module.Resolve("helpers", dir)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolveFindsPackageDirectoryConvention(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "mypkg")
	require.NoError(t, os.Mkdir(pkgDir, 0o755))
	main := filepath.Join(pkgDir, "mypkg.q")
	require.NoError(t, os.WriteFile(main, []byte("let y = 2\n"), 0o644))

	resolved, err := module.Resolve("mypkg", dir)
	require.NoError(t, err)
	assert.Equal(t, main, resolved)
}

func TestResolveFallsBackToQuestPath(t *testing.T) {
	fromDir := t.TempDir()
	pathRoot := t.TempDir()
	path := filepath.Join(pathRoot, "lib.q")
	require.NoError(t, os.WriteFile(path, []byte("let z = 3\n"), 0o644))

	t.Setenv("QUEST_PATH", pathRoot)

	resolved, err := module.Resolve("lib", fromDir)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolveReturnsErrorForMissingModule(t *testing.T) {
	_, err := module.Resolve("does_not_exist", t.TempDir())
	assert.Error(t, err)
}

func TestBaseNameTrimsSourceExtension(t *testing.T) {
	assert.Equal(t, "helpers", module.BaseName("/some/dir/helpers.q"))
}
