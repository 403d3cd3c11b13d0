// Where: internal/app/module_test.go
// What: Tests for the module command.
// Why: Single-directory scaffolding must honor extension and directory flags.
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunModuleCreatesFileInDirectory(t *testing.T) {
	workDir := setupTestEnv(t)
	var out bytes.Buffer

	exitCode := Run(
		[]string{"module", "Lib", "--dir", "src-lib", "--no-interactive"},
		Dependencies{WorkDir: workDir, Out: &out},
	)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, out.String())
	}

	path := filepath.Join(workDir, "src-lib", "Lib.hs")
	if got := readFile(t, path); got != "module Lib where\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestRunModuleDefaultsToWorkingDirectory(t *testing.T) {
	workDir := setupTestEnv(t)
	var out bytes.Buffer

	exitCode := Run(
		[]string{"module", "Utils", "--no-interactive"},
		Dependencies{WorkDir: workDir, Out: &out},
	)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, out.String())
	}
	if got := readFile(t, filepath.Join(workDir, "Utils.hs")); got != "module Utils where\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestRunModuleMultipleNames(t *testing.T) {
	workDir := setupTestEnv(t)
	var out bytes.Buffer

	exitCode := Run(
		[]string{"module", "Parser", "Printer.hs", "--dir", "src-lib", "--no-interactive"},
		Dependencies{WorkDir: workDir, Out: &out},
	)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, out.String())
	}
	for _, name := range []string{"Parser.hs", "Printer.hs"} {
		if _, err := os.Stat(filepath.Join(workDir, "src-lib", name)); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
	}
}
