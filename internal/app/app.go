// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/r8vnhill/echo-app-cabal/internal/config"
	"github.com/r8vnhill/echo-app-cabal/internal/scaffold"
	"github.com/r8vnhill/echo-app-cabal/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	WorkDir string
	Out     io.Writer
	Confirm scaffold.Confirmer
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Force         bool   `help:"Overwrite existing files without confirmation"`
	NoInteractive bool   `short:"n" help:"Never prompt; existing files are skipped with a warning"`
	DryRun        bool   `help:"Print actions without touching the filesystem"`
	EnvFile       string `name:"env-file" help:"Path to .env file"`

	New        NewCmd        `cmd:"" help:"Scaffold module headers into the standard directory groups"`
	Module     ModuleCmd     `cmd:"" help:"Scaffold named modules into one directory"`
	Init       InitCmd       `cmd:"" help:"Scaffold a cabal project (manifest plus default modules)"`
	Config     ConfigCmd     `cmd:"" name:"config" help:"Show resolved configuration"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type ConfigCmd struct{}

// NewCmd scaffolds the three fixed directory groups. Each override is a
// comma-separated list of module names for that group.
type NewCmd struct {
	App  string `help:"Module names for the app directory (default: Main)"`
	Lib  string `help:"Module names for the library directory (default: Lib)"`
	Test string `help:"Module names for the test directory (default: Main)"`
}

// ModuleCmd scaffolds explicit module names into one directory.
type ModuleCmd struct {
	Names []string `arg:"" help:"Module names to scaffold"`
	Dir   string   `short:"d" default:"." help:"Target directory"`
}

// InitCmd scaffolds a cabal manifest plus the default module layout.
type InitCmd struct {
	Name string `arg:"" optional:"" help:"Project name (default: working directory name)"`
	Demo bool   `help:"Fill app/Main.hs with the echo demo program"`
}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// Handle no arguments: show resolved configuration and help hint
	if len(args) == 0 {
		return runNoArgs(deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in the working directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"new":             runNew,
		"init":            runInit,
		"config":          runConfigShow,
		"completion bash": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionBash(cli, out) },
		"completion zsh":  func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionZsh(cli, out) },
		"completion fish": func(_ CLI, _ Dependencies, out io.Writer) int { return runCompletionFish(cli, out) },
		"version":         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "module", handler: runModule},
		{prefix: "init", handler: runInit},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

// runNoArgs handles the case when hscaffold is invoked without arguments.
// It displays the resolved configuration and a usage hint.
func runNoArgs(deps Dependencies, out io.Writer) int {
	code := runConfigShow(CLI{}, deps, out)
	fmt.Fprintln(out, "\nRun 'hscaffold --help' for usage.")
	return code
}
