// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scatspectra/scale"
)

func newLookupCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Translate between scale paths and indices",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:     "path j1,j2,...",
			Short:   "Print the index of a scale path",
			Example: "  scaleindex lookup path 1,3\n  scaleindex lookup path 2,-1   # padded row",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := parsePath(args[0])
				if err != nil {
					return err
				}
				sc, err := a.indexer()
				if err != nil {
					return err
				}
				idx, err := sc.PathToIndex(path)
				if err != nil {
					return err
				}
				return describe(cmd, sc, idx)
			},
		},
		&cobra.Command{
			Use:     "index N",
			Short:   "Print the scale path numbered N",
			Example: "  scaleindex lookup index 11",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				idx, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("index %q: %w", args[0], err)
				}
				sc, err := a.indexer()
				if err != nil {
					return err
				}
				return describe(cmd, sc, idx)
			},
		},
	)
	return cmd
}

// parsePath reads "j1,j2,..."; "" and "()" are the empty path.
func parsePath(s string) (scale.Path, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	if s == "" {
		return scale.Path{}, nil
	}
	fields := strings.Split(s, ",")
	p := make(scale.Path, len(fields))
	for i, f := range fields {
		j, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("path coordinate %q: %w", f, err)
		}
		p[i] = j
	}
	return p, nil
}

// describe prints "index path order=r [low-pass=b]".
func describe(cmd *cobra.Command, sc *scale.ScaleIndexer, idx int) error {
	p, err := sc.IndexToPath(idx)
	if err != nil {
		return err
	}
	r, err := sc.R(idx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if r == 0 {
		_, err = fmt.Fprintf(out, "%d %v order=0\n", idx, p)
		return err
	}
	low, err := sc.IsLowPass(idx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%d %v order=%d low-pass=%v\n", idx, p, r, low)
	return err
}
