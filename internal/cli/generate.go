package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/mvcgen"
	"github.com/syssam/mvcgen/compiler/gen"
	"github.com/syssam/mvcgen/schema"
)

func newGenerateCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		flags  genFlags
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "generate <project.yaml>",
		Short: "Generate a project from a YAML description",
		Example: `  mvcgen generate blog.yaml --target ./out --driver postgres
  mvcgen generate blog.yaml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := printer{w: cmd.OutOrStdout()}
			if dryRun {
				artifacts, err := mvcgen.Render(*spec, flags.options(logger(cmd), nil)...)
				if err != nil {
					return err
				}
				for _, a := range artifacts {
					fmt.Fprintf(out.w, "%-8s %s\n", a.Phase, a.Path)
				}
				return nil
			}
			return generate(cmd, out, spec, &flags, logger(cmd))
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files without writing them")
	return cmd
}

// generate writes the project and prints the final summary.
func generate(cmd *cobra.Command, out printer, spec *schema.ProjectSpec, flags *genFlags, log *slog.Logger) error {
	opts := flags.options(log, out)
	g, err := mvcgen.Load(*spec, opts...)
	if err != nil {
		return err
	}
	out.summary(spec)
	m, err := mvcgen.Generate(cmd.Context(), *spec, opts...)
	if err != nil {
		return err
	}
	out.done(m, g.FeatureEnabled(gen.FeatureSchemaSQL.Name))
	return nil
}
