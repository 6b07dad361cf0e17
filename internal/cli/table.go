// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scatspectra/internal/config"
	"github.com/katalvlaran/scatspectra/internal/render"
)

func newTableCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print every scale path with its index, order and low-pass flag",
		Example: `  scaleindex table -J 4 -Q 1,1 -r 2
  scaleindex table --format yaml > paths.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}
			sc, err := a.indexer()
			if err != nil {
				return err
			}
			t, err := render.Build(sc)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), t, f)
		},
	}
	cmd.Flags().StringP("format", "o", config.DefaultConfig().Format, "output format: text|yaml|toml")
	_ = a.v.BindPFlag(config.KeyFormat, cmd.Flags().Lookup("format"))
	return cmd
}
