// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Build the index, run its self-checks and summarize each order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := a.indexer()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for r := 1; r <= sc.MaxOrder(); r++ {
				first, last, err := sc.OrderRange(r)
				if err != nil {
					return err
				}
				mask, err := sc.LowPassMask(r)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "order %d: %d paths, indices [%d, %d], %d low-pass\n",
					r, last-first+1, first, last, lo.Count(mask, true))
			}
			_, err = fmt.Fprintf(out, "ok: %d indices\n", sc.PathCount())
			return err
		},
	}
}
