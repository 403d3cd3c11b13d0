// Where: internal/config/global_test.go
// What: Tests for global config load/save.
// Why: Config defaults drive every scaffolding command.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/r8vnhill/echo-app-cabal/internal/constants"
)

func TestGlobalConfigPathRespectsConfigPathOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(constants.EnvConfigPath, override)

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != override {
		t.Fatalf("expected %s, got %s", override, path)
	}
}

func TestGlobalConfigPathRespectsConfigHomeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.EnvConfigPath, "")
	t.Setenv(constants.EnvConfigHome, home)

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != filepath.Join(home, "config.yaml") {
		t.Fatalf("unexpected path: %s", path)
	}
}

func TestEnsureGlobalConfigCreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.EnvConfigHome, home)

	if err := EnsureGlobalConfig(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg, err := LoadGlobalConfig(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("load created config: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("unexpected version: %d", cfg.Version)
	}
	if cfg.Extension != ".hs" {
		t.Fatalf("unexpected extension: %s", cfg.Extension)
	}
	if len(cfg.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(cfg.Groups))
	}
}

func TestEnsureGlobalConfigLeavesExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.EnvConfigHome, home)

	path := filepath.Join(home, "config.yaml")
	custom := []byte("version: 1\nextension: .lhs\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := EnsureGlobalConfig(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	payload, _ := os.ReadFile(path)
	if string(payload) != string(custom) {
		t.Fatalf("existing config was rewritten: %q", payload)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := GlobalConfig{
		Version:   1,
		Extension: ".lhs",
		Groups: []GroupConfig{
			{Dir: "src", Files: []string{"Core", "Parser"}},
		},
	}
	if err := SaveGlobalConfig(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadGlobalConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Extension != ".lhs" {
		t.Fatalf("unexpected extension: %s", loaded.Extension)
	}
	groups := loaded.DirectoryGroups()
	if len(groups) != 1 || groups[0].Dir != "src" || len(groups[0].Files) != 2 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestDirectoryGroupsFallsBackToDefaults(t *testing.T) {
	cfg := GlobalConfig{Version: 1}
	groups := cfg.DirectoryGroups()
	if len(groups) != 3 {
		t.Fatalf("expected default groups, got %+v", groups)
	}
	if groups[1].Dir != "src-lib" || groups[1].Files[0] != "Lib" {
		t.Fatalf("unexpected library group: %+v", groups[1])
	}
}

func TestLoadGlobalConfigOrDefaultOnMissingFile(t *testing.T) {
	t.Setenv(constants.EnvConfigHome, t.TempDir())
	cfg := LoadGlobalConfigOrDefault()
	if cfg.Version != 1 || len(cfg.Groups) != 3 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
