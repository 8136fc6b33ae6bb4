package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/dave/jennifer/jen"
)

// Directory layout of the generated project.
const (
	DirPublic     = "public"
	DirEntity     = "src/Entity"
	DirController = "src/Controller"
	DirRepository = "src/Repository"
	DirView       = "src/View"
	DirCore       = "src/Core"
	DirConfig     = "config"
)

// Layout lists the directories created before any file is written.
// src/View is created even when the presentation feature is disabled.
var Layout = []string{
	DirPublic,
	DirEntity,
	DirController,
	DirRepository,
	DirView,
	DirCore,
	DirConfig,
}

// Phases of a generation run, in write order.
const (
	PhaseStructure = "structure"
	PhaseStatic    = "static"
	PhaseEntity    = "entity"
	PhaseView      = "view"
	PhaseAuth      = "auth"
	PhaseRoutes    = "routes"
)

// Artifact is one generated file.
type Artifact struct {
	// Path is relative to the project root, slash separated.
	Path string
	// Content is the complete file content.
	Content []byte
	// Phase is the generation phase that produced the artifact.
	Phase string
	// Subject names the entity the artifact belongs to, if any.
	Subject string
}

// Manifest lists the files written by a run.
type Manifest struct {
	// Root is the project directory.
	Root string
	// Paths are relative to Root, in write order, without duplicates.
	Paths []string
}

func (m *Manifest) add(p string) {
	for _, seen := range m.Paths {
		if seen == p {
			return
		}
	}
	m.Paths = append(m.Paths, p)
}

// Generator orchestrates one generation run. It renders every artifact
// through the configured Dialect, then writes them in a fixed order.
type Generator struct {
	graph   *Graph
	dialect Dialect
}

// NewGenerator creates a new generator for the graph.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/mvcgen/compiler/gen/web"
//
//	generator := gen.NewGenerator(graph)
//	generator.WithDialect(web.NewDialect(generator))
//	manifest, err := generator.Generate(ctx)
func NewGenerator(g *Graph) *Generator {
	return &Generator{graph: g}
}

// WithDialect sets the dialect producing the artifacts.
func (g *Generator) WithDialect(d Dialect) *Generator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// Root returns the directory of the generated project.
func (g *Generator) Root() string {
	return g.graph.ProjectDir(g.graph.Project)
}

// Render produces every artifact of the run in write order without
// touching the file system.
func (g *Generator) Render() ([]Artifact, error) {
	if g.dialect == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Render()")
	}
	var out []Artifact

	static, err := g.dialect.GenStatic()
	if err != nil {
		return nil, NewGenerationError(PhaseStatic, "", "render static files", err)
	}
	for _, a := range static {
		if a.Phase == "" {
			a.Phase = PhaseStatic
		}
		out = append(out, a)
	}

	for _, t := range g.graph.Nodes {
		files, err := g.renderType(t, PhaseEntity)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}

	if g.graph.Variant.Hybrid() {
		layout, err := g.dialect.GenLayout()
		if err != nil {
			return nil, NewGenerationError(PhaseView, path.Join(DirView, "layout.html"), "render layout", err)
		}
		out = append(out, Artifact{Path: path.Join(DirView, "layout.html"), Content: layout, Phase: PhaseView})
		for _, t := range g.graph.Nodes {
			p := path.Join(DirView, t.Names.ViewFile)
			view, err := g.dialect.GenView(t)
			if err != nil {
				return nil, NewGenerationError(PhaseView, p, "render view", err)
			}
			out = append(out, Artifact{Path: p, Content: view, Phase: PhaseView, Subject: t.Name})
		}
	}

	if u := g.graph.User; u != nil {
		files, err := g.renderType(u, PhaseAuth)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
		p := path.Join(DirController, "auth_controller.go")
		content, err := renderGo(g.dialect.GenAuthController())
		if err != nil {
			return nil, NewGenerationError(PhaseAuth, p, "render", err)
		}
		out = append(out, Artifact{Path: p, Content: content, Phase: PhaseAuth, Subject: u.Name})
		if g.graph.Variant.Hybrid() {
			views, err := g.dialect.GenAuthViews()
			if err != nil {
				return nil, NewGenerationError(PhaseAuth, DirView, "render auth views", err)
			}
			for _, name := range sortedKeys(views) {
				out = append(out, Artifact{Path: path.Join(DirView, name), Content: views[name], Phase: PhaseAuth, Subject: u.Name})
			}
		}
	}

	p := path.Join(DirConfig, "routes.go")
	routes, err := renderGo(g.dialect.GenRoutes())
	if err != nil {
		return nil, NewGenerationError(PhaseRoutes, p, "render", err)
	}
	out = append(out, Artifact{Path: p, Content: routes, Phase: PhaseRoutes})
	return out, nil
}

// renderType renders the model, repository and controller of a type.
func (g *Generator) renderType(t *Type, phase string) ([]Artifact, error) {
	files := []struct {
		path string
		file *jen.File
	}{
		{path.Join(DirEntity, t.Names.Lower+".go"), g.dialect.GenEntity(t)},
		{path.Join(DirRepository, t.Names.Lower+"_repository.go"), g.dialect.GenRepository(t)},
		{path.Join(DirController, t.Names.Lower+"_controller.go"), g.dialect.GenController(t)},
	}
	out := make([]Artifact, 0, len(files))
	for _, f := range files {
		content, err := renderGo(f.file)
		if err != nil {
			return nil, NewGenerationError(phase, f.path, "render", err)
		}
		out = append(out, Artifact{Path: f.path, Content: content, Phase: phase, Subject: t.Name})
	}
	return out, nil
}

// Generate renders the artifacts, creates the project directory and
// writes every artifact to it. The project directory must not exist.
//
// A write failure aborts the run. Files written before the failure are
// left on disk; there is no rollback.
func (g *Generator) Generate(ctx context.Context) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	artifacts, err := g.Render()
	if err != nil {
		return nil, err
	}
	root := g.Root()
	if err := createRoot(root); err != nil {
		return nil, err
	}
	var (
		log      = g.graph.logger()
		reporter = g.graph.reporter()
		manifest = &Manifest{Root: root}
	)
	for _, dir := range Layout {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755); err != nil {
			return manifest, NewGenerationError(PhaseStructure, dir, "create directory", err)
		}
	}
	reporter.Progress(Progress{Phase: PhaseStructure, Files: Layout})
	log.Debug("project structure created", "root", root)

	var step *Progress
	flush := func() {
		if step != nil {
			reporter.Progress(*step)
			step = nil
		}
	}
	for _, a := range artifacts {
		if step != nil && (step.Phase != a.Phase || step.Subject != a.Subject) {
			flush()
		}
		if err := writeArtifact(root, a); err != nil {
			return manifest, NewGenerationError(a.Phase, a.Path, "write", err)
		}
		manifest.add(a.Path)
		log.Debug("artifact written", "path", a.Path, "bytes", len(a.Content))
		if step == nil {
			step = &Progress{Phase: a.Phase, Subject: a.Subject}
		}
		step.Files = append(step.Files, a.Path)
	}
	flush()
	return manifest, nil
}

// createRoot creates the project directory. Its absence is checked by
// the creation itself.
func createRoot(root string) error {
	if err := os.MkdirAll(filepath.Dir(root), 0o755); err != nil {
		return NewGenerationError(PhaseStructure, filepath.Dir(root), "create parent directory", err)
	}
	if err := os.Mkdir(root, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &ConfigError{
				Option:  "Target",
				Value:   root,
				Message: "project directory already exists",
				Cause:   ErrTargetExists,
			}
		}
		return NewGenerationError(PhaseStructure, root, "create project directory", err)
	}
	return nil
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow dialect packages to access helper functionality.
// =============================================================================

var _ GeneratorHelper = (*Generator)(nil)

// NewFile creates a new Jennifer file with the standard header comment.
func (g *Generator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	if g.graph.Header != "" {
		f.HeaderComment(g.graph.Header)
	}
	return f
}

// GoType returns the Jennifer code for a field's Go type.
func (g *Generator) GoType(f *Field) jen.Code {
	s := f.Storage()
	if s.PkgPath != "" {
		return jen.Qual(s.PkgPath, s.Name)
	}
	return jen.Id(s.Name)
}

// ModulePath returns the module path of the generated project.
func (g *Generator) ModulePath() string {
	return g.graph.Config.ModulePath(g.graph.Project)
}

// CorePkg returns the import path of the generated runtime.
func (g *Generator) CorePkg() string { return g.pkg(DirCore) }

// EntityPkg returns the import path of the models.
func (g *Generator) EntityPkg() string { return g.pkg(DirEntity) }

// RepositoryPkg returns the import path of the repositories.
func (g *Generator) RepositoryPkg() string { return g.pkg(DirRepository) }

// ControllerPkg returns the import path of the controllers.
func (g *Generator) ControllerPkg() string { return g.pkg(DirController) }

// Graph returns the schema graph.
func (g *Generator) Graph() *Graph { return g.graph }

// Variant returns the controller variant of the run.
func (g *Generator) Variant() Variant { return g.graph.Variant }

// FeatureEnabled reports if the given feature name is enabled.
func (g *Generator) FeatureEnabled(name string) bool {
	return g.graph.FeatureEnabled(name)
}

func (g *Generator) pkg(dir string) string {
	return g.ModulePath() + "/" + dir
}

// renderGo formats a Jennifer file.
func renderGo(f *jen.File) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("no file generated")
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
