// Where: internal/scaffold/guard.go
// What: Overwrite decision logic.
// Why: One place decides whether an existing file may be replaced.
package scaffold

import "os"

// Confirmer asks the user whether the file at path may be overwritten.
// A nil Confirmer denies every overwrite that would otherwise prompt.
type Confirmer func(path string) (bool, error)

// Allow reports whether writing to path may proceed.
//
//	path missing            -> allow
//	exists, force           -> allow
//	exists, no-interactive  -> deny
//	exists otherwise        -> ask the confirmer
func Allow(path string, force, noInteractive bool, confirm Confirmer) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	if force {
		return true, nil
	}
	if noInteractive || confirm == nil {
		return false, nil
	}
	return confirm(path)
}
