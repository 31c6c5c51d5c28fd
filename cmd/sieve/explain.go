package sieve

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "explain <path>",
		Short: MsgExplainShort,
		Long:  MsgExplainLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet(&flags)
			if err != nil {
				return err
			}

			path := args[0]
			d := set.Evaluate(path, pathIsDir(path))
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "path:     %s\n", path)
			if d.Excluded {
				fmt.Fprintln(out, "verdict:  excluded")
			} else {
				fmt.Fprintln(out, "verdict:  kept")
			}

			switch {
			case !d.Matched:
				fmt.Fprintln(out, "reason:   no pattern matched")
			case d.Ancestor != "":
				fmt.Fprintf(out, "reason:   ancestor directory %q is excluded (terminal)\n", d.Ancestor)
				fmt.Fprintf(out, "pattern:  %s (line %d)\n", d.Pattern, d.Line)
			case d.Negated:
				fmt.Fprintf(out, "reason:   re-included by negation\n")
				fmt.Fprintf(out, "pattern:  %s (line %d)\n", d.Pattern, d.Line)
			default:
				fmt.Fprintf(out, "pattern:  %s (line %d)\n", d.Pattern, d.Line)
			}
			return nil
		},
	}

	addSourceFlags(cmd, &flags)

	return cmd
}
