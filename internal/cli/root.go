// Package cli implements the mvcgen command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/mvcgen"
	"github.com/syssam/mvcgen/internal/wizard"
)

// PromptFunc returns the prompter used by the init command.
type PromptFunc func(accessible bool) (wizard.Prompter, error)

// Terminal is the PromptFunc of the real command line. It fails when stdin
// is not a terminal.
func Terminal(accessible bool) (wizard.Prompter, error) {
	if !wizard.Interactive() {
		return nil, wizard.ErrNotInteractive
	}
	return wizard.NewTerminal(accessible), nil
}

// NewRootCmd returns the mvcgen command tree.
func NewRootCmd(prompt PromptFunc) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "mvcgen",
		Short: "Generate a layered Go web application from entity descriptions",
		Long: `mvcgen writes a complete Go web project: one model, repository and
controller per entity, an optional set of HTML views, an optional
authentication bundle and the route table wiring them together.`,
		Version:       mvcgen.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetVersionTemplate("mvcgen {{.Version}}\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every written file")

	logger := func(cmd *cobra.Command) *slog.Logger {
		return newLogger(cmd.ErrOrStderr(), verbose)
	}
	root.AddCommand(
		newInitCmd(prompt, logger),
		newGenerateCmd(logger),
		newRoutesCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line with args.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd(Terminal)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the generator version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mvcgen %s\n", mvcgen.Version)
		},
	}
}
