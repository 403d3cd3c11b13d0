// Where: internal/scaffold/groups.go
// What: Directory group defaults.
// Why: Fix the standard cabal layout the batch scaffolder fans out over.
package scaffold

// DirectoryGroup pairs a target directory with the module names scaffolded
// into it.
type DirectoryGroup struct {
	Dir   string
	Files []string
}

// Default cabal layout directories.
const (
	AppDir  = "app"
	LibDir  = "src-lib"
	TestDir = "test"
)

// DefaultGroups returns the three fixed directory groups with their default
// file lists.
func DefaultGroups() []DirectoryGroup {
	return []DirectoryGroup{
		{Dir: AppDir, Files: []string{"Main"}},
		{Dir: LibDir, Files: []string{"Lib"}},
		{Dir: TestDir, Files: []string{"Main"}},
	}
}
