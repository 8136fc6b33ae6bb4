package gen

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"golang.org/x/tools/imports"
)

// ExecuteGo executes a Go source template and formats the result with
// goimports, which also resolves the imports the template left out.
// filename is used for import grouping and error messages.
func ExecuteGo(t *template.Template, name, filename string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute template %q for %s: %w", name, filename, err)
	}
	return FormatGo(filename, buf.Bytes())
}

// FormatGo formats Go source using goimports.
func FormatGo(filename string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}

// Execute executes a text template.
func Execute(t *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// writeArtifact writes a single artifact below root, creating its directory.
func writeArtifact(root string, a Artifact) error {
	full := filepath.Join(root, filepath.FromSlash(a.Path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", a.Path, err)
	}
	if err := os.WriteFile(full, a.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", a.Path, err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
