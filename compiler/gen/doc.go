// Package gen provides code generation for mvcgen projects.
//
// This package turns a schema.ProjectSpec into a complete layered web
// application: one model, repository and controller per entity, optional
// listing views, an optional authentication bundle and the route table.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	ProjectSpec (schema package, YAML file or interactive wizard)
//	        ↓
//	   Graph (Types, Fields, derived Names, resolved Variant)
//	        ↓
//	   Dialect (compiler/gen/web, artifact content)
//	        ↓
//	   Generator (precondition, write order, progress)
//	        ↓
//	   Generated project (<target>/<project>/)
//
// # Derivation Rules
//
// Every artifact derives its identifiers through the same functions so
// that the generated files agree with each other:
//
//   - Derive: class, table, route segment, controller and view names of an entity
//   - DeriveField: accessor, column and key names of a field
//   - Rules: the ordered validation rules of a field
//   - StorageOf and InputOf: the Go type and HTML control of a field type
//   - RouteTable: the ordered route table of the graph
//
// # Interface Hierarchy
//
//	Dialect
//	├── EntityGenerator (GenEntity, GenRepository, GenController)
//	├── ViewGenerator (GenView, GenLayout)
//	├── AuthGenerator (GenAuthController, GenAuthViews)
//	└── GraphGenerator (GenRoutes, GenStatic)
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - SchemaError: invalid project descriptions
//   - ConfigError: configuration errors, including an existing target
//   - GenerationError: render and write failures
//
// Example error handling:
//
//	manifest, err := generator.Generate(ctx)
//	switch {
//	case errors.Is(err, gen.ErrTargetExists):
//	    // nothing was written
//	case gen.IsGenerationError(err):
//	    // files written before the failure are left on disk
//	}
//
// # Configuration
//
// Use functional options to configure code generation:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./out"),
//	    gen.WithModule("github.com/acme/blog"),
//	    gen.WithDriver(gen.DriverPostgres),
//	)
package gen
