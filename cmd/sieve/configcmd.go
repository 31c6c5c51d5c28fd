package sieve

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/sieve/pkg/config"
	"github.com/arthur-debert/sieve/pkg/errors"
)

func newConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var rendered []byte
			switch format {
			case "toml":
				rendered, err = toml.Marshal(cfg)
			case "yaml":
				rendered, err = yaml.Marshal(cfg)
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want toml or yaml)", format)
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "rendering config")
			}

			fmt.Fprint(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml or yaml")

	return cmd
}
