// Where: internal/scaffold/header.go
// What: Module header derivation and writing.
// Why: Produce the one-line module declaration every scaffolded file starts from.
package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/r8vnhill/echo-app-cabal/internal/generator"
)

// ModuleName derives the bare module identifier from a file path: the base
// name with its extension stripped.
func ModuleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WriteHeader overwrites path with a single rendered module header line.
// Callers must gate overwrites through Allow beforehand.
func WriteHeader(path string) error {
	content, err := renderHeader(ModuleName(path))
	if err != nil {
		return err
	}
	return writeFile(path, content)
}

func renderHeader(moduleName string) (string, error) {
	return generator.RenderModuleHeader(moduleName)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
