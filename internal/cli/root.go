// SPDX-License-Identifier: MIT

// Package cli holds the scaleindex command tree.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/scatspectra/internal/config"
	"github.com/katalvlaran/scatspectra/scale"
)

// app is the per-invocation state shared by subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand builds the scaleindex command tree. Each call returns an
// independent tree, so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}
	d := config.DefaultConfig()

	root := &cobra.Command{
		Use:   "scaleindex",
		Short: "Enumerate and look up scattering-transform scale paths",
		Long: `scaleindex builds the scale-path index of a wavelet scattering network:
every admissible path (j1, ..., jr) up to the maximum order, numbered
order by order in lexicographic order, with () as index 0.

Configuration comes from flags, SCATSPECTRA_* environment variables and
an optional scaleindex.yaml / scaleindex.toml file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./scaleindex.{yaml,toml} when present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log construction diagnostics")
	pf.IntP("octaves", "J", d.Octaves, "number of octaves")
	pf.IntSliceP("densities", "Q", d.Densities, "wavelets per octave, one entry per order")
	pf.IntP("max-order", "r", d.MaxOrder, "highest scattering order")
	pf.String("collapse", d.Collapse, "collapse self-check coverage: all|second")
	pf.Int("path-limit", d.PathLimit, "abort when more paths would be enumerated")

	for key, flag := range map[string]string{
		config.KeyOctaves:   "octaves",
		config.KeyDensities: "densities",
		config.KeyMaxOrder:  "max-order",
		config.KeyCollapse:  "collapse",
		config.KeyPathLimit: "path-limit",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newTableCommand(a),
		newLookupCommand(a),
		newCheckCommand(a),
	)
	return root
}

// setup resolves configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "scaleindex"})
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration resolved",
		"octaves", cfg.Octaves, "densities", cfg.Densities, "max_order", cfg.MaxOrder,
		"config_file", a.v.ConfigFileUsed())
	return nil
}

// indexer builds the ScaleIndexer described by the resolved configuration.
func (a *app) indexer() (*scale.ScaleIndexer, error) {
	opts := append(a.cfg.IndexerOptions(), scale.WithLogger(a.logger))
	sc, err := scale.NewScaleIndexer(a.cfg.Octaves, a.cfg.Densities, a.cfg.MaxOrder, opts...)
	if err != nil {
		a.logger.Error("cannot build scale indexer", "err", err)
		return nil, err
	}
	return sc, nil
}
