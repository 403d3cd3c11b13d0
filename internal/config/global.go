// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.hscaffold/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/r8vnhill/echo-app-cabal/internal/constants"
	"github.com/r8vnhill/echo-app-cabal/internal/scaffold"
	"gopkg.in/yaml.v3"
)

// HomeDir is the per-user directory holding the global config file.
const HomeDir = ".hscaffold"

// GlobalConfig represents the ~/.hscaffold/config.yaml global configuration.
// It carries the scaffolding defaults applied when flags are absent.
type GlobalConfig struct {
	Version   int           `yaml:"version"`
	Extension string        `yaml:"extension,omitempty"`
	Groups    []GroupConfig `yaml:"groups,omitempty"`
}

// GroupConfig stores one directory group's target and default file names.
type GroupConfig struct {
	Dir   string   `yaml:"dir"`
	Files []string `yaml:"files"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set
// and the standard cabal layout groups.
func DefaultGlobalConfig() GlobalConfig {
	cfg := GlobalConfig{
		Version:   1,
		Extension: scaffold.DefaultExtension,
	}
	for _, group := range scaffold.DefaultGroups() {
		cfg.Groups = append(cfg.Groups, GroupConfig{Dir: group.Dir, Files: group.Files})
	}
	return cfg
}

// DirectoryGroups converts the configured groups to the scaffold type,
// falling back to the built-in defaults when none are configured.
func (c GlobalConfig) DirectoryGroups() []scaffold.DirectoryGroup {
	if len(c.Groups) == 0 {
		return scaffold.DefaultGroups()
	}
	groups := make([]scaffold.DirectoryGroup, 0, len(c.Groups))
	for _, group := range c.Groups {
		groups = append(groups, scaffold.DirectoryGroup{Dir: group.Dir, Files: group.Files})
	}
	return groups
}

// GlobalConfigPath returns the path to the global config file.
// Respects the HSCAFFOLD_CONFIG_PATH and HSCAFFOLD_CONFIG_HOME overrides.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(constants.EnvConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(os.Getenv(constants.EnvConfigHome)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads, validates, and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	if err := validateGlobalConfig(payload); err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault loads the global config, falling back to the
// defaults if the file is missing or unreadable.
func LoadGlobalConfigOrDefault() GlobalConfig {
	path, err := GlobalConfigPath()
	if err != nil {
		return DefaultGlobalConfig()
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		return DefaultGlobalConfig()
	}
	return cfg
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
