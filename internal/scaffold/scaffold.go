// Where: internal/scaffold/scaffold.go
// What: Per-file and batch scaffolding orchestration.
// Why: Tie resolution, guarding, directory creation, and writing together.
package scaffold

import (
	"path/filepath"
	"strings"
)

// DefaultExtension is appended to file names that carry no extension.
const DefaultExtension = ".hs"

// Request carries the per-file scaffolding parameters. One Request is
// created per invocation and never persisted.
type Request struct {
	FileName      string
	Force         bool
	NoInteractive bool
	DryRun        bool
}

// Options carries the shared flags a batch applies to every file.
type Options struct {
	Force         bool
	NoInteractive bool
	DryRun        bool
}

// Status classifies the outcome of scaffolding one file.
type Status int

const (
	StatusCreated Status = iota
	StatusSimulated
	StatusSkipped
	StatusFailed
)

// Result reports the outcome of scaffolding one file.
type Result struct {
	Path   string
	Status Status
	Err    error
}

// Renderer produces the full content written for a module name.
type Renderer func(moduleName string) (string, error)

// Scaffolder creates module files. The zero value uses DefaultExtension,
// denies every overwrite that would prompt, and writes bare module headers.
type Scaffolder struct {
	Extension string
	Confirm   Confirmer
	Render    Renderer
}

func (s Scaffolder) extension() string {
	if s.Extension == "" {
		return DefaultExtension
	}
	return s.Extension
}

// ScaffoldFile processes a single request against dir. Each file is handled
// independently; the returned Result carries any failure instead of an
// aggregate error.
func (s Scaffolder) ScaffoldFile(dir string, req Request) Result {
	name := strings.TrimSpace(req.FileName)
	if name == "" {
		return Result{Path: dir, Status: StatusSkipped}
	}
	if filepath.Ext(name) == "" {
		name += s.extension()
	}

	path := ResolvePath(filepath.Join(dir, name))
	parent := filepath.Dir(path)

	allowed, err := Allow(path, req.Force, req.NoInteractive, s.Confirm)
	if err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	if !allowed {
		return Result{Path: path, Status: StatusSkipped}
	}

	if err := EnsureDir(parent, req.DryRun); err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	if req.DryRun {
		return Result{Path: path, Status: StatusSimulated}
	}

	if err := s.write(path); err != nil {
		return Result{Path: path, Status: StatusFailed, Err: err}
	}
	return Result{Path: path, Status: StatusCreated}
}

// ScaffoldBatch processes names against one directory, in order. A failed
// file does not abort its siblings.
func (s Scaffolder) ScaffoldBatch(dir string, names []string, opts Options) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		req := Request{
			FileName:      name,
			Force:         opts.Force,
			NoInteractive: opts.NoInteractive,
			DryRun:        opts.DryRun,
		}
		results = append(results, s.ScaffoldFile(dir, req))
	}
	return results
}

// ScaffoldGroups fans a batch out across directory groups.
func (s Scaffolder) ScaffoldGroups(groups []DirectoryGroup, opts Options) []Result {
	var results []Result
	for _, group := range groups {
		results = append(results, s.ScaffoldBatch(group.Dir, group.Files, opts)...)
	}
	return results
}

func (s Scaffolder) write(path string) error {
	render := s.Render
	if render == nil {
		render = renderHeader
	}
	content, err := render(ModuleName(path))
	if err != nil {
		return err
	}
	return writeFile(path, content)
}
