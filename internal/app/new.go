// Where: internal/app/new.go
// What: New command implementation.
// Why: Fan the batch scaffolder out across the standard directory groups.
package app

import (
	"io"
	"strings"

	"github.com/r8vnhill/echo-app-cabal/internal/config"
	"github.com/r8vnhill/echo-app-cabal/internal/scaffold"
	"github.com/r8vnhill/echo-app-cabal/internal/ui"
)

func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	cfg := config.LoadGlobalConfigOrDefault()
	groups := applyGroupOverrides(cfg.DirectoryGroups(), cli.New)
	opts := resolveOptions(cli)
	scaffolder := newScaffolder(deps, cfg)

	console.Header("🧱", "Scaffolding module files")
	var results []scaffold.Result
	for _, group := range groups {
		dir := resolveDir(deps.WorkDir, group.Dir)
		results = append(results, scaffolder.ScaffoldBatch(dir, group.Files, opts)...)
	}
	return reportResults(console, deps.WorkDir, results)
}

// applyGroupOverrides replaces a group's default file list when its
// corresponding flag was given.
func applyGroupOverrides(groups []scaffold.DirectoryGroup, cmd NewCmd) []scaffold.DirectoryGroup {
	overrides := map[string]string{
		scaffold.AppDir:  cmd.App,
		scaffold.LibDir:  cmd.Lib,
		scaffold.TestDir: cmd.Test,
	}
	for i, group := range groups {
		value, ok := overrides[group.Dir]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		groups[i].Files = splitNameList(value)
	}
	return groups
}
