// Where: internal/app/init.go
// What: Init command implementation.
// Why: Lay down a cabal manifest plus the default module layout in one shot.
package app

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/r8vnhill/echo-app-cabal/internal/config"
	"github.com/r8vnhill/echo-app-cabal/internal/generator"
	"github.com/r8vnhill/echo-app-cabal/internal/scaffold"
	"github.com/r8vnhill/echo-app-cabal/internal/ui"
)

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	cfg := config.LoadGlobalConfigOrDefault()
	opts := resolveOptions(cli)

	name := projectName(cli.Init.Name, deps.WorkDir)
	console.Header("📦", "Initializing cabal project "+name)

	var results []scaffold.Result

	manifest := scaffold.Scaffolder{
		Confirm: deps.Confirm,
		Render:  generator.RenderCabal,
	}
	results = append(results, manifest.ScaffoldFile(deps.WorkDir, scaffold.Request{
		FileName:      name + ".cabal",
		Force:         opts.Force,
		NoInteractive: opts.NoInteractive,
		DryRun:        opts.DryRun,
	}))

	scaffolder := newScaffolder(deps, cfg)
	demo := scaffolder
	demo.Render = generator.RenderEchoMain

	for _, group := range cfg.DirectoryGroups() {
		dir := resolveDir(deps.WorkDir, group.Dir)
		active := scaffolder
		if cli.Init.Demo && group.Dir == scaffold.AppDir {
			active = demo
		}
		results = append(results, active.ScaffoldBatch(dir, group.Files, opts)...)
	}

	return reportResults(console, deps.WorkDir, results)
}

// projectName falls back to the working directory's base name when no
// explicit name was given.
func projectName(name, workDir string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed != "" {
		return trimmed
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return filepath.Base(workDir)
	}
	return filepath.Base(abs)
}
