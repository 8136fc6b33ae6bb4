// Package web provides the code generation of the layered web application.
//
// This package implements the gen.Dialect interface. Go sources are built
// with Jennifer; HTML views and the static project files are rendered from
// the embedded templates.
//
// Usage:
//
//	import (
//	    "github.com/syssam/mvcgen/compiler/gen"
//	    "github.com/syssam/mvcgen/compiler/gen/web"
//	)
//
//	generator := gen.NewGenerator(graph)
//	generator.WithDialect(web.NewDialect(generator))
//	manifest, err := generator.Generate(ctx)
//
// Generated code structure:
//
//	{project}/
//	├── go.mod
//	├── README.md
//	├── config/
//	│   ├── database.env          # DB_* settings read at startup
//	│   ├── schema.sql            # CREATE TABLE statements
//	│   └── routes.go             # Route table
//	├── public/
//	│   ├── main.go               # HTTP server entry point
//	│   └── assets/app.css
//	└── src/
//	    ├── Core/                 # Shared runtime
//	    ├── Entity/{entity}.go    # Model, setter table, serializer
//	    ├── Repository/{entity}_repository.go
//	    ├── Controller/{entity}_controller.go
//	    └── View/{entity}_index.html
package web

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/mvcgen/compiler/gen"
)

// Generate is a convenience function generating the project of the graph
// with the web dialect.
//
// Example:
//
//	manifest, err := web.Generate(ctx, graph)
func Generate(ctx context.Context, g *gen.Graph) (*gen.Manifest, error) {
	if g == nil || g.Config == nil {
		return nil, gen.NewConfigError("Config", nil, "missing configuration")
	}
	if g.Target == "" {
		return nil, gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	generator := gen.NewGenerator(g)
	generator.WithDialect(NewDialect(generator))
	return generator.Generate(ctx)
}

// Dialect implements gen.Dialect for the web application stack.
type Dialect struct {
	helper gen.GeneratorHelper
}

// NewDialect creates a new web dialect generator.
// The helper parameter should be a *gen.Generator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

var _ gen.Dialect = (*Dialect)(nil)

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "web"
}

// =============================================================================
// Per-entity generation methods
// =============================================================================

// GenEntity generates the model file (src/Entity/{entity}.go).
// Includes: struct, accessors, setter table, Hydrate and Extract.
func (d *Dialect) GenEntity(t *gen.Type) *jen.File {
	return genEntity(d.helper, t)
}

// GenRepository generates the data access file (src/Repository/{entity}_repository.go).
func (d *Dialect) GenRepository(t *gen.Type) *jen.File {
	return genRepository(d.helper, t)
}

// GenController generates the handler file (src/Controller/{entity}_controller.go).
func (d *Dialect) GenController(t *gen.Type) *jen.File {
	return genController(d.helper, t)
}

// =============================================================================
// Presentation methods
// =============================================================================

// GenView generates the listing page of an entity.
func (d *Dialect) GenView(t *gen.Type) ([]byte, error) {
	return genView(d.helper, t)
}

// GenLayout generates the page layout shared by every view.
func (d *Dialect) GenLayout() ([]byte, error) {
	return genLayout(d.helper)
}

// =============================================================================
// Authentication methods
// =============================================================================

// GenAuthController generates src/Controller/auth_controller.go.
func (d *Dialect) GenAuthController() *jen.File {
	return genAuthController(d.helper)
}

// GenAuthViews generates the login and registration pages.
func (d *Dialect) GenAuthViews() (map[string][]byte, error) {
	return genAuthViews(d.helper)
}

// =============================================================================
// Graph-level generation methods
// =============================================================================

// GenRoutes generates the route table (config/routes.go).
func (d *Dialect) GenRoutes() *jen.File {
	return genRoutes(d.helper)
}

// GenStatic generates the project files that do not depend on entity fields.
func (d *Dialect) GenStatic() ([]gen.Artifact, error) {
	return genStatic(d.helper)
}
