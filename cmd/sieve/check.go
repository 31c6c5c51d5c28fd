package sieve

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ErrNothingExcluded signals that no argument path was excluded. main
// turns it into exit status 1 without printing anything.
var ErrNothingExcluded = stderrors.New("no paths excluded")

func newCheckCmd() *cobra.Command {
	var flags sourceFlags
	var detail bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := buildSet(&flags)
			if err != nil {
				return err
			}

			anyExcluded := false
			for _, arg := range args {
				d := set.Evaluate(arg, pathIsDir(arg))
				if !d.Excluded {
					continue
				}
				anyExcluded = true
				if detail {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%s\n", d.Pattern, d.Line, arg)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), arg)
				}
			}

			if !anyExcluded {
				return ErrNothingExcluded
			}
			return nil
		},
	}

	addSourceFlags(cmd, &flags)
	cmd.Flags().BoolVar(&detail, "detail", false, "Show the deciding pattern and line for each path")

	return cmd
}

// pathIsDir decides whether an argument names a directory: the filesystem
// answers when the path exists, a trailing slash answers otherwise.
func pathIsDir(arg string) bool {
	if info, err := os.Stat(arg); err == nil {
		return info.IsDir()
	}
	return strings.HasSuffix(arg, "/")
}
