package sieve

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/sieve/pkg/config"
	"github.com/arthur-debert/sieve/pkg/errors"
	"github.com/arthur-debert/sieve/pkg/ignore"
	"github.com/arthur-debert/sieve/pkg/presets"
)

// sourceFlags carries the per-command pattern-source flags.
type sourceFlags struct {
	presets     []string
	ignoreFiles []string
	patterns    []string
}

func addSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringSliceVar(&f.presets, "preset", nil, "Apply a built-in preset (repeatable)")
	cmd.Flags().StringSliceVarP(&f.ignoreFiles, "ignore-file", "f", nil, "Load patterns from an ignore file (repeatable)")
	cmd.Flags().StringArrayVarP(&f.patterns, "pattern", "p", nil, "Add a literal pattern (repeatable)")
}

// buildSet assembles the active pattern set. Layering order: configured
// presets, configured ignore files, --preset, --ignore-file, --pattern.
// Later sources can override earlier ones via negation.
func buildSet(f *sourceFlags) (*ignore.Set, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var sets []*ignore.Set

	appendPresets := func(names []string) error {
		for _, name := range names {
			set, err := presets.Load(name)
			if err != nil {
				return err
			}
			sets = append(sets, set)
		}
		return nil
	}
	appendFiles := func(paths []string) error {
		for _, path := range paths {
			set, err := ignore.Load(path)
			if err != nil {
				return err
			}
			sets = append(sets, set)
		}
		return nil
	}

	if err := appendPresets(cfg.Sources.Presets); err != nil {
		return nil, err
	}
	if err := appendFiles(cfg.Sources.IgnoreFiles); err != nil {
		return nil, err
	}
	if err := appendPresets(f.presets); err != nil {
		return nil, err
	}
	if err := appendFiles(f.ignoreFiles); err != nil {
		return nil, err
	}
	if len(f.patterns) > 0 {
		set, err := ignore.ParseLines(f.patterns)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRulesetLoad, "compiling --pattern flags")
		}
		sets = append(sets, set)
	}

	return ignore.Compile(sets...).WithOptions(ignore.Options{
		CaseInsensitive: cfg.Matching.CaseInsensitive,
		MaxBacktrack:    cfg.Matching.MaxBacktrack,
	}), nil
}
