package config

// Version is the current Quest version.
var Version = "0.1.0"

const SourceFileExt = ".q"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{SourceFileExt}

// TrimSourceExt removes the recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	if len(name) >= len(SourceFileExt) && name[len(name)-len(SourceFileExt):] == SourceFileExt {
		return name[:len(name)-len(SourceFileExt)]
	}
	return name
}

// HasSourceExt returns true if path ends with the recognized source extension.
func HasSourceExt(path string) bool {
	return len(path) >= len(SourceFileExt) && path[len(path)-len(SourceFileExt):] == SourceFileExt
}

// QuestPathEnv is the environment variable holding extra `use`-path search
// roots, colon-separated, consulted after the script's own directory.
const QuestPathEnv = "QUEST_PATH"

// StdPackagePrefix marks a `use` path as resolving against the built-in
// std/ registry instead of the filesystem.
const StdPackagePrefix = "std/"

// IsTestMode indicates the process is running under `go test`.
var IsTestMode = false
