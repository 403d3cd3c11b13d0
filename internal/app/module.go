// Where: internal/app/module.go
// What: Module command implementation.
// Why: Scaffold explicit module names against a single directory.
package app

import (
	"io"

	"github.com/r8vnhill/echo-app-cabal/internal/config"
	"github.com/r8vnhill/echo-app-cabal/internal/ui"
)

func runModule(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	cfg := config.LoadGlobalConfigOrDefault()
	opts := resolveOptions(cli)
	scaffolder := newScaffolder(deps, cfg)

	dir := resolveDir(deps.WorkDir, cli.Module.Dir)
	console.Header("🧱", "Scaffolding module files")
	results := scaffolder.ScaffoldBatch(dir, cli.Module.Names, opts)
	return reportResults(console, deps.WorkDir, results)
}
