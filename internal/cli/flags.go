package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/mvcgen/compiler/gen"
)

// genFlags are the generation options shared by init and generate.
type genFlags struct {
	target   string
	module   string
	driver   string
	header   string
	features []string
	without  []string
}

func (f *genFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.target, "target", "t", ".", "parent directory of the generated project")
	fs.StringVar(&f.module, "module", "", "Go module path of the generated project (default: project name)")
	fs.StringVar(&f.driver, "driver", gen.DriverMySQL, "default database driver: mysql, postgres or sqlite")
	fs.StringVar(&f.header, "header", "", "header comment of generated Go files")
	fs.StringSliceVar(&f.features, "feature", nil, "enable a feature (views, auth, sql/schema)")
	fs.StringSliceVar(&f.without, "without", nil, "disable a feature enabled by default")
}

func (f *genFlags) options(log *slog.Logger, r gen.Reporter) []gen.Option {
	opts := []gen.Option{
		gen.WithTarget(f.target),
		gen.WithDriver(f.driver),
		gen.WithFeatureNames(f.features...),
		gen.WithoutFeatures(f.without...),
		gen.WithLogger(log),
	}
	if f.module != "" {
		opts = append(opts, gen.WithModule(f.module))
	}
	if f.header != "" {
		opts = append(opts, gen.WithHeader(f.header))
	}
	if r != nil {
		opts = append(opts, gen.WithReporter(r))
	}
	return opts
}
