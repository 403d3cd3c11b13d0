// Where: internal/app/command_context.go
// What: Shared helpers for CLI commands.
// Why: Reduce duplicated flag/env resolution and result reporting across commands.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/r8vnhill/echo-app-cabal/internal/config"
	"github.com/r8vnhill/echo-app-cabal/internal/constants"
	"github.com/r8vnhill/echo-app-cabal/internal/scaffold"
	"github.com/r8vnhill/echo-app-cabal/internal/ui"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// resolveOptions merges CLI flags with HSCAFFOLD_* environment overrides.
// Environment variables can only enable a behavior, never disable a flag.
func resolveOptions(cli CLI) scaffold.Options {
	opts := scaffold.Options{
		Force:         cli.Force,
		NoInteractive: cli.NoInteractive,
		DryRun:        cli.DryRun,
	}
	if envBool(constants.EnvForce) {
		opts.Force = true
	}
	if envBool(constants.EnvNoInteractive) {
		opts.NoInteractive = true
	}
	if envBool(constants.EnvDryRun) {
		opts.DryRun = true
	}
	return opts
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func newScaffolder(deps Dependencies, cfg config.GlobalConfig) scaffold.Scaffolder {
	return scaffold.Scaffolder{
		Extension: cfg.Extension,
		Confirm:   deps.Confirm,
	}
}

// resolveDir anchors a relative directory at the working directory.
func resolveDir(workDir, dir string) string {
	if dir == "" || filepath.IsAbs(dir) || workDir == "" {
		return dir
	}
	return filepath.Join(workDir, dir)
}

// displayPath shortens paths under baseDir for console output.
func displayPath(baseDir, path string) string {
	if baseDir == "" {
		return path
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// splitNameList splits a comma-separated list of module names,
// trimming whitespace and dropping empty entries.
func splitNameList(value string) []string {
	parts := strings.Split(value, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		names = append(names, trimmed)
	}
	return names
}

// reportResults prints one line per scaffolded file and returns the exit
// code: 1 if any file failed, 0 otherwise. Skips are not failures.
func reportResults(console *ui.Console, baseDir string, results []scaffold.Result) int {
	failed := 0
	for _, res := range results {
		path := displayPath(baseDir, res.Path)
		switch res.Status {
		case scaffold.StatusCreated:
			console.Success("created " + path)
		case scaffold.StatusSimulated:
			console.Info("[dry-run] would write " + path)
		case scaffold.StatusSkipped:
			console.Warn("skipped " + path + " (already exists)")
		case scaffold.StatusFailed:
			failed++
			console.Error(fmt.Sprintf("%s: %v", path, res.Err))
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}
