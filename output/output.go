// Package output decides where a figure is written and opens it afterwards.
//
// Resolve is deliberately permissive: it never fails and silently replaces
// an unusable path (missing parent directory) with DefaultFile in the
// working directory. Callers who need strict paths should validate first.
package output

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFile is the fallback file name.
const DefaultFile = "graph.pdf"

// defaultBase is DefaultFile without its extension.
const defaultBase = "graph"

// DefaultName returns "graph.<format>", or DefaultFile for an empty format.
func DefaultName(format string) string {
	format = strings.TrimPrefix(strings.TrimSpace(format), ".")
	if format == "" {
		return DefaultFile
	}

	return defaultBase + "." + strings.ToLower(format)
}

// Resolve maps a caller path to a concrete file path.
//
// Rules, in order:
//   - "" → DefaultFile.
//   - an existing directory → dir/DefaultFile.
//   - a path whose parent directory does not exist → DefaultFile.
//   - anything else is returned unchanged; a bare file name ("plot.pdf")
//     has "." as its parent and is kept.
func Resolve(path string) string {
	return ResolveAs(path, DefaultFile)
}

// ResolveAs is Resolve with a caller-chosen default file name.
func ResolveAs(path, name string) string {
	if path == "" {
		return name
	}
	if isDir(path) {
		path = filepath.Join(path, name)
	}
	if !isDir(filepath.Dir(path)) {
		return name
	}

	return path
}

func isDir(p string) bool {
	fi, err := os.Stat(p)

	return err == nil && fi.IsDir()
}
