// Where: cmd/hscaffold/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"fmt"
	"os"

	"github.com/r8vnhill/echo-app-cabal/internal/app"
	"github.com/r8vnhill/echo-app-cabal/internal/interaction"
	"github.com/r8vnhill/echo-app-cabal/internal/scaffold"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir: workDir,
		Out:     os.Stdout,
		Confirm: newConfirmer(),
	}, nil
}

// newConfirmer picks the overwrite confirmation strategy for this session.
// Without a terminal on stdin there is nobody to ask, so overwrites are
// denied (nil confirmer). With a full TTY the huh dialog is used; otherwise
// a plain y/N prompt on stderr.
func newConfirmer() scaffold.Confirmer {
	if !interaction.IsTerminal(os.Stdin) {
		return nil
	}
	if interaction.IsTerminal(os.Stdout) {
		var prompter interaction.Prompter = interaction.HuhPrompter{}
		return func(path string) (bool, error) {
			return prompter.Confirm(fmt.Sprintf("Overwrite %s?", path))
		}
	}
	return func(path string) (bool, error) {
		return interaction.PromptYesNo(fmt.Sprintf("Overwrite %s?", path))
	}
}
