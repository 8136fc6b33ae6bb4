package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/mvcgen"
	"github.com/syssam/mvcgen/schema"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes <project.yaml>",
		Short: "Print the route table of a project description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}
			routes, err := mvcgen.Routes(*spec)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, r := range routes {
				fmt.Fprintf(w, "%-7s %-24s %s.%s\n", r.Method, r.Path, r.Controller, r.Action)
			}
			return nil
		},
	}
}
