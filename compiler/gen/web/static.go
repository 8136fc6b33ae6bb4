package web

import (
	"fmt"
	"path"
	"strings"

	"github.com/syssam/mvcgen/compiler/gen"
	coresrc "github.com/syssam/mvcgen/core"
)

// Require is one module requirement of the generated go.mod.
type Require struct {
	Path    string
	Version string
}

// Requires lists the modules imported by the shipped runtime.
var Requires = []Require{
	{Path: "github.com/go-sql-driver/mysql", Version: "v1.9.3"},
	{Path: "github.com/google/uuid", Version: "v1.6.0"},
	{Path: "github.com/hashicorp/golang-lru/v2", Version: "v2.0.7"},
	{Path: "github.com/joho/godotenv", Version: "v1.5.1"},
	{Path: "github.com/lib/pq", Version: "v1.12.3"},
	{Path: "golang.org/x/crypto", Version: "v0.46.0"},
	{Path: "modernc.org/sqlite", Version: "v1.37.1"},
}

// staticData is the template data of the static files.
type staticData struct {
	Project  string
	Module   string
	CorePkg  string
	Header   string
	Driver   string
	Port     string
	User     string
	Views    bool
	Auth     bool
	Schema   bool
	Requires []Require
	Routes   []gen.Route
}

func newStaticData(h gen.GeneratorHelper) staticData {
	g := h.Graph()
	d := staticData{
		Project:  g.Project,
		Module:   h.ModulePath(),
		CorePkg:  h.CorePkg(),
		Header:   g.Header,
		Driver:   g.Driver,
		Views:    g.Variant.Hybrid(),
		Auth:     g.User != nil,
		Schema:   h.FeatureEnabled(gen.FeatureSchemaSQL.Name),
		Requires: Requires,
		Routes:   gen.RouteTable(g),
	}
	if d.Driver == "" {
		d.Driver = gen.DriverMySQL
	}
	switch d.Driver {
	case gen.DriverPostgres:
		d.Port, d.User = "5432", "postgres"
	case gen.DriverMySQL:
		d.Port, d.User = "3306", "root"
	}
	return d
}

// genStatic renders the files that do not depend on the entity fields, in
// write order. config/routes.go is a placeholder replaced by the final
// route table at the end of the run.
func genStatic(h gen.GeneratorHelper) ([]gen.Artifact, error) {
	d := newStaticData(h)
	var out []gen.Artifact
	add := func(p string, content []byte) {
		out = append(out, gen.Artifact{Path: p, Content: content, Phase: gen.PhaseStatic})
	}

	text := []struct {
		path string
		tmpl string
	}{
		{"go.mod", "go.mod.tmpl"},
		{".gitignore", "gitignore.tmpl"},
		{"README.md", "README.md.tmpl"},
		{path.Join(gen.DirConfig, "database.env"), "database.env.tmpl"},
	}
	for _, f := range text {
		b, err := gen.Execute(templates, f.tmpl, d)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f.path, err)
		}
		add(f.path, b)
	}

	if d.Schema {
		b, err := schemaSQL(h.Graph())
		if err != nil {
			return nil, fmt.Errorf("render schema.sql: %w", err)
		}
		add(path.Join(gen.DirConfig, "schema.sql"), b)
	}

	sources := []struct {
		path string
		tmpl string
	}{
		{path.Join(gen.DirConfig, "routes.go"), "routes.go.tmpl"},
		{path.Join(gen.DirPublic, "main.go"), "main.go.tmpl"},
	}
	for _, f := range sources {
		b, err := gen.ExecuteGo(templates, f.tmpl, f.path, d)
		if err != nil {
			return nil, err
		}
		add(f.path, b)
	}

	css, err := gen.Execute(templates, "app.css.tmpl", nil)
	if err != nil {
		return nil, fmt.Errorf("render app.css: %w", err)
	}
	add(path.Join(gen.DirPublic, "assets", "app.css"), css)

	runtime, err := runtimeSources()
	if err != nil {
		return nil, err
	}
	out = append(out, runtime...)
	return out, nil
}

// schemaSQL renders config/schema.sql.
func schemaSQL(g *gen.Graph) ([]byte, error) {
	stmts, err := g.TableSchemas()
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	driver := g.Driver
	if driver == "" {
		driver = gen.DriverMySQL
	}
	fmt.Fprintf(&b, "-- Tables of %s (%s).\n", g.Project, driver)
	for _, s := range stmts {
		b.WriteString("\n")
		b.WriteString(s)
	}
	return []byte(b.String()), nil
}

// runtimeSources copies the core package into src/Core.
func runtimeSources() ([]gen.Artifact, error) {
	names, err := coresrc.SourceFiles()
	if err != nil {
		return nil, fmt.Errorf("list runtime sources: %w", err)
	}
	out := make([]gen.Artifact, 0, len(names))
	for _, name := range names {
		b, err := coresrc.Sources.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read runtime source %s: %w", name, err)
		}
		out = append(out, gen.Artifact{Path: path.Join(gen.DirCore, name), Content: b, Phase: gen.PhaseStatic})
	}
	return out, nil
}
