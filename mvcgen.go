// Package mvcgen generates small layered Go web applications from a
// description of their entities.
//
// A project is described by a schema.ProjectSpec: a name, the entities with
// their ordered fields, and two flags enabling the HTML views and the
// authentication bundle. Generate writes the project to <target>/<name>:
//
//	spec := schema.ProjectSpec{
//	    ProjectName: "blog",
//	    Entities: []schema.EntitySpec{{
//	        Name:   "Post",
//	        Fields: []schema.FieldSpec{schema.Field("title", "string")},
//	    }},
//	}
//	manifest, err := mvcgen.Generate(ctx, spec, gen.WithTarget("./out"))
//
// The options are those of the compiler/gen package.
package mvcgen

import (
	"context"

	"github.com/syssam/mvcgen/compiler/gen"
	"github.com/syssam/mvcgen/compiler/gen/web"
	"github.com/syssam/mvcgen/schema"
)

// Version of the generator.
const Version = "0.3.0"

// Load builds the graph of spec with the given options.
func Load(spec schema.ProjectSpec, opts ...gen.Option) (*gen.Graph, error) {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, spec)
}

// Generate writes the project described by spec and returns the written
// paths. The project directory must not exist.
func Generate(ctx context.Context, spec schema.ProjectSpec, opts ...gen.Option) (*gen.Manifest, error) {
	g, err := Load(spec, opts...)
	if err != nil {
		return nil, err
	}
	return web.Generate(ctx, g)
}

// Render returns the artifacts of spec in write order without touching
// the file system.
func Render(spec schema.ProjectSpec, opts ...gen.Option) ([]gen.Artifact, error) {
	g, err := Load(spec, opts...)
	if err != nil {
		return nil, err
	}
	generator := gen.NewGenerator(g)
	generator.WithDialect(web.NewDialect(generator))
	return generator.Render()
}

// Routes returns the route table the generated project registers.
func Routes(spec schema.ProjectSpec, opts ...gen.Option) ([]gen.Route, error) {
	g, err := Load(spec, opts...)
	if err != nil {
		return nil, err
	}
	return gen.RouteTable(g), nil
}
