package gen

import "github.com/dave/jennifer/jen"

// =============================================================================
// Artifact generator interfaces
// =============================================================================

// EntityGenerator generates the per-entity Go artifacts.
type EntityGenerator interface {
	// GenEntity generates the model (src/Entity/{entity}.go).
	GenEntity(t *Type) *jen.File
	// GenRepository generates the data access object (src/Repository/{entity}_repository.go).
	GenRepository(t *Type) *jen.File
	// GenController generates the request handler (src/Controller/{entity}_controller.go).
	GenController(t *Type) *jen.File
}

// ViewGenerator generates the presentation templates.
type ViewGenerator interface {
	// GenView generates the listing page of an entity (src/View/{entity}_index.html).
	GenView(t *Type) ([]byte, error)
	// GenLayout generates the shared page layout (src/View/layout.html).
	GenLayout() ([]byte, error)
}

// AuthGenerator generates the authentication bundle. The user model and
// repository come from the EntityGenerator applied to Graph.User.
type AuthGenerator interface {
	// GenAuthController generates src/Controller/auth_controller.go.
	GenAuthController() *jen.File
	// GenAuthViews generates the login and registration pages, keyed by file name.
	GenAuthViews() (map[string][]byte, error)
}

// GraphGenerator generates the files shared by every entity.
type GraphGenerator interface {
	// GenRoutes generates the route table (config/routes.go).
	GenRoutes() *jen.File
	// GenStatic generates the files that do not depend on the entities'
	// fields: manifests, configuration, runtime sources and the entry point.
	GenStatic() ([]Artifact, error)
}

// Dialect defines the interface for the application code generation.
//
// Architecture:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                        Generator                            │
//	│  (Orchestration: precondition, write order, reporting)      │
//	└─────────────────────────┬───────────────────────────────────┘
//	                          │ uses
//	                          ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                         Dialect                             │
//	│  (Interface: what each target stack must implement)         │
//	└─────────────────────────┬───────────────────────────────────┘
//	                          │ implemented by
//	                          ▼
//	                   ┌─────────────┐
//	                   │ WebDialect  │
//	                   │ (gen/web)   │
//	                   └─────────────┘
//
// Methods return *jen.File for Go sources and raw bytes for templates. The
// Generator renders them and writes the files to disk.
type Dialect interface {
	EntityGenerator
	ViewGenerator
	AuthGenerator
	GraphGenerator
}

// GeneratorHelper provides helper methods for dialect implementations.
// Generator implements this interface, allowing dialect packages to use
// helper methods without importing the orchestration code.
type GeneratorHelper interface {
	// NewFile creates a new Jennifer file with the standard header comment.
	NewFile(pkg string) *jen.File

	// GoType returns the Jennifer code for a field's Go type.
	GoType(f *Field) jen.Code

	// ModulePath returns the module path of the generated project.
	ModulePath() string

	// CorePkg returns the import path of the generated runtime (src/Core).
	CorePkg() string

	// EntityPkg returns the import path of the models (src/Entity).
	EntityPkg() string

	// RepositoryPkg returns the import path of the repositories (src/Repository).
	RepositoryPkg() string

	// ControllerPkg returns the import path of the controllers (src/Controller).
	ControllerPkg() string

	// Graph returns the schema graph.
	Graph() *Graph

	// Variant returns the controller variant of the run.
	Variant() Variant

	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
}
