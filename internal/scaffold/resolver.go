// Where: internal/scaffold/resolver.go
// What: Best-effort path resolution.
// Why: Normalize existing paths to absolute form without failing on new ones.
package scaffold

import (
	"os"
	"path/filepath"
)

// ResolvePath returns the absolute form of path when the filesystem entry
// exists. A non-existent path is returned unchanged; resolution is
// best-effort and never an error.
func ResolvePath(path string) string {
	if path == "" {
		return path
	}
	if _, err := os.Stat(path); err != nil {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
