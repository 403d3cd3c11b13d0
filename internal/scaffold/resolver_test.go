// Where: internal/scaffold/resolver_test.go
// What: Tests for best-effort path resolution.
// Why: Ensure missing paths pass through unchanged and existing ones go absolute.
package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePathMissingReturnsInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "does-not-exist", "Main.hs")
	if got := ResolvePath(input); got != input {
		t.Fatalf("expected input unchanged, got %s", got)
	}
}

func TestResolvePathEmptyReturnsEmpty(t *testing.T) {
	if got := ResolvePath(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestResolvePathExistingReturnsAbsolute(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Lib.hs")
	if err := os.WriteFile(target, []byte("module Lib where\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
	got := ResolvePath("Lib.hs")
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %s", got)
	}
	if filepath.Base(got) != "Lib.hs" {
		t.Fatalf("expected terminal component Lib.hs, got %s", got)
	}
}
