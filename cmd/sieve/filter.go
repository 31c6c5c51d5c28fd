package sieve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/sieve/pkg/scanner"
)

func newFilterCmd() *cobra.Command {
	var flags sourceFlags
	var showExcluded bool

	cmd := &cobra.Command{
		Use:   "filter [dir]",
		Short: MsgFilterShort,
		Long:  MsgFilterLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			set, err := buildSet(&flags)
			if err != nil {
				return err
			}

			result, err := scanner.New(set).WalkDir(dir)
			if err != nil {
				return err
			}

			paths := result.Kept
			if showExcluded {
				paths = result.Excluded
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	addSourceFlags(cmd, &flags)
	cmd.Flags().BoolVar(&showExcluded, "excluded", false, "Print excluded paths instead of kept ones")

	return cmd
}
