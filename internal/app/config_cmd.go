// Where: internal/app/config_cmd.go
// What: Config command implementation.
// Why: Show the resolved global configuration and where it came from.
package app

import (
	"io"
	"strings"

	"github.com/r8vnhill/echo-app-cabal/internal/config"
	"github.com/r8vnhill/echo-app-cabal/internal/ui"
)

func runConfigShow(_ CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg := config.LoadGlobalConfigOrDefault()

	console.Header("⚙️", "Configuration")
	console.Item("Config file", path)
	console.Item("Extension", cfg.Extension)
	for _, group := range cfg.DirectoryGroups() {
		console.Item(group.Dir, strings.Join(group.Files, ", "))
	}
	return 0
}
