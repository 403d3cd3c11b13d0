// Where: internal/app/completion_test.go
// What: Tests for shell completion generation.
// Why: Scripts are derived from the kong model and must track the CLI.
package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunCompletionBash(t *testing.T) {
	workDir := setupTestEnv(t)
	var out bytes.Buffer

	exitCode := Run([]string{"completion", "bash"}, Dependencies{WorkDir: workDir, Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	script := out.String()
	if !strings.Contains(script, "complete -F _hscaffold_completion hscaffold") {
		t.Fatalf("missing complete registration: %q", script)
	}
	for _, cmd := range []string{"new", "module", "init", "config", "completion", "version"} {
		if !strings.Contains(script, cmd) {
			t.Fatalf("missing command %q in script", cmd)
		}
	}
}

func TestRunCompletionZsh(t *testing.T) {
	workDir := setupTestEnv(t)
	var out bytes.Buffer

	exitCode := Run([]string{"completion", "zsh"}, Dependencies{WorkDir: workDir, Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.HasPrefix(out.String(), "#compdef hscaffold") {
		t.Fatalf("missing compdef header: %q", out.String())
	}
}

func TestRunCompletionFish(t *testing.T) {
	workDir := setupTestEnv(t)
	var out bytes.Buffer

	exitCode := Run([]string{"completion", "fish"}, Dependencies{WorkDir: workDir, Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(out.String(), "__fish_use_subcommand") {
		t.Fatalf("unexpected fish script: %q", out.String())
	}
	if !strings.Contains(out.String(), "__fish_seen_subcommand_from completion") {
		t.Fatalf("missing completion subcommands: %q", out.String())
	}
}
