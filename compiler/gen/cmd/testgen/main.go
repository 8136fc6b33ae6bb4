// testgen is a simple test program to demonstrate the Jennifer-based code generator.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/syssam/mvcgen/compiler/gen"
	"github.com/syssam/mvcgen/compiler/gen/web"
	"github.com/syssam/mvcgen/schema"
)

func main() {
	// Create a temp directory for output
	outDir, err := os.MkdirTemp("", "mvcgen-jennifer-test-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output directory: %s\n", outDir)

	spec := schema.ProjectSpec{
		ProjectName: "blog",
		Entities: []schema.EntitySpec{
			{
				Name: "Post",
				Fields: []schema.FieldSpec{
					schema.Field("title", "string"),
					schema.Field("body", "text"),
					schema.Field("published", "bool"),
				},
			},
			{
				Name: "Comment",
				Fields: []schema.FieldSpec{
					schema.Field("author", "string"),
					schema.Field("posted_at", "datetime"),
				},
			},
		},
		WithPresentationViews: true,
		WithAuthentication:    true,
	}

	// Create config with functional options
	config, err := gen.NewConfig(
		gen.WithModule("example.com/test/blog"),
		gen.WithTarget(outDir),
		gen.WithDriver(gen.DriverSQLite),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %v\n", err)
		os.Exit(1)
	}

	// Create the graph
	graph, err := gen.NewGraph(config, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create graph: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generating code with Jennifer (web dialect)...")
	manifest, err := web.Generate(context.Background(), graph)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nGenerated files:")
	for _, p := range manifest.Paths {
		info, err := os.Stat(filepath.Join(manifest.Root, filepath.FromSlash(p)))
		if err != nil {
			continue
		}
		fmt.Printf("  %s (%d bytes)\n", p, info.Size())
	}
	fmt.Printf("\nRun: cd %s && go mod tidy && go run ./public\n", manifest.Root)
}
