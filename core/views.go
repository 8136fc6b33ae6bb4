package core

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LayoutFile is the shared page layout. It must define "layout" and call
// the "content" template defined by each page.
const LayoutFile = "layout.html"

// Views renders HTML pages from a directory of templates. Parsed pages are cached.
type Views struct {
	dir   string
	cache *lru.Cache[string, *template.Template]
}

// NewViews returns a renderer for the templates in dir.
func NewViews(dir string) (*Views, error) {
	cache, err := lru.New[string, *template.Template](64)
	if err != nil {
		return nil, fmt.Errorf("core: views cache: %w", err)
	}
	return &Views{dir: dir, cache: cache}, nil
}

// Dir returns the template directory.
func (v *Views) Dir() string { return v.dir }

func (v *Views) lookup(name string) (*template.Template, error) {
	if t, ok := v.cache.Get(name); ok {
		return t, nil
	}
	t, err := template.ParseFiles(filepath.Join(v.dir, LayoutFile), filepath.Join(v.dir, name))
	if err != nil {
		return nil, fmt.Errorf("core: parse view %s: %w", name, err)
	}
	v.cache.Add(name, t)
	return t, nil
}

// Render executes the page name inside the layout and writes it with status 200.
func (v *Views) Render(w http.ResponseWriter, name string, data any) error {
	t, err := v.lookup(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("core: render view %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = buf.WriteTo(w)
	return err
}
