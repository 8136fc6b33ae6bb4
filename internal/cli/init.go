package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/mvcgen/internal/wizard"
)

func newInitCmd(prompt PromptFunc, logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		flags      genFlags
		accessible bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Describe a project interactively and generate it",
		Long: `init asks for the project name, the entities and their fields, and
whether to generate HTML views and authentication. A blank field name
ends the fields of an entity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := prompt(accessible)
			if err != nil {
				return err
			}
			out := printer{w: cmd.OutOrStdout()}
			heading.Fprintln(out.w, "mvcgen project generator")
			spec, err := wizard.New(p, out).Run()
			if err != nil {
				return err
			}
			return generate(cmd, out, spec, &flags, logger(cmd))
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&accessible, "accessible", false, "use plain line prompts")
	return cmd
}
