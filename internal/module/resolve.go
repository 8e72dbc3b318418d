// Package module resolves `use` paths to filesystem locations, independent
// of how the resolved source gets parsed and run. It mirrors the teacher's
// internal/modules/loader.go path-resolution logic without carrying along
// funxy's static-typed virtual-package machinery, which belongs to a type
// system Quest does not have.
package module

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quest-lang/quest/internal/config"
)

// IsStd reports whether path names a built-in std/ package, resolved by the
// evaluator's module loader against its registry rather than the filesystem.
func IsStd(path string) bool {
	return strings.HasPrefix(path, config.StdPackagePrefix)
}

// Resolve turns a `use` path into an absolute source file path. Relative
// paths are tried first against fromDir (the directory of the file doing
// the `use`), then against each entry of QUEST_PATH.
func Resolve(path, fromDir string) (string, error) {
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		candidates = []string{filepath.Join(fromDir, path)}
		if root := os.Getenv(config.QuestPathEnv); root != "" {
			for _, dir := range strings.Split(root, string(os.PathListSeparator)) {
				candidates = append(candidates, filepath.Join(dir, path))
			}
		}
	}

	for _, c := range candidates {
		if resolved := tryExtensions(c); resolved != "" {
			return resolved, nil
		}
	}
	return "", fmt.Errorf("no such module %q", path)
}

// tryExtensions checks base itself when it already ends in .q; otherwise it
// checks base.q, then base/base.q (package-directory convention: a
// directory whose main file shares its name).
func tryExtensions(base string) string {
	if config.HasSourceExt(base) {
		if fileExists(base) {
			return base
		}
		return ""
	}
	if fileExists(base + config.SourceFileExt) {
		return base + config.SourceFileExt
	}
	if info, err := os.Stat(base); err == nil && info.IsDir() {
		main := filepath.Join(base, filepath.Base(base)+config.SourceFileExt)
		if fileExists(main) {
			return main
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// BaseName derives a module's default bind name from its resolved source
// path: the file name with its source extension trimmed.
func BaseName(resolved string) string {
	return config.TrimSourceExt(filepath.Base(resolved))
}
