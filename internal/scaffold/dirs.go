// Where: internal/scaffold/dirs.go
// What: Directory creation with dry-run awareness.
// Why: Give every scaffolded file a place to land without duplicating mkdir logic.
package scaffold

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and any missing parents) unless it already exists.
// An empty dir is a no-op. In dry-run mode creation is simulated and the
// filesystem is left untouched.
func EnsureDir(dir string, dryRun bool) error {
	if dir == "" {
		return nil
	}
	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists and is not a directory", dir)
	}
	if dryRun {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
