// Where: internal/generator/renderer.go
// What: Render module headers, cabal manifests, and the echo demo program.
// Why: Keep all generated file content in embedded templates with one render path.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

type headerTemplateData struct {
	Name string
}

type cabalTemplateData struct {
	Name    string
	Version string
}

const defaultCabalVersion = "0.1.0.0"

// RenderModuleHeader renders the single-line module declaration for name.
// The result always ends with exactly one newline.
func RenderModuleHeader(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("module name is empty")
	}
	return renderTemplate("module_header.hs.tmpl", headerTemplateData{Name: trimmed})
}

// RenderEchoMain renders the demo echo program body for app/Main.hs.
func RenderEchoMain(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = "Main"
	}
	return renderTemplate("echo_main.hs.tmpl", headerTemplateData{Name: trimmed})
}

// RenderCabal renders a minimal cabal manifest for the given project name.
func RenderCabal(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("project name is empty")
	}
	data := cabalTemplateData{Name: trimmed, Version: defaultCabalVersion}
	return renderTemplate("package.cabal.tmpl", data)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
