// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scatspectra/internal/config"
	"github.com/katalvlaran/scatspectra/scale"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "bank.yaml", "octaves: 8\ndensities: [4, 1]\nmax_order: 2\nformat: yaml\n")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Octaves)
	assert.Equal(t, []int{4, 1}, cfg.Densities)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, config.CollapseAll, cfg.Collapse, "unset keys keep their defaults")
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeFile(t, "bank.toml", "octaves = 5\ndensities = [1, 1, 1]\nmax_order = 3\ncollapse = \"second\"\n")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Octaves)
	assert.Equal(t, []int{1, 1, 1}, cfg.Densities)
	assert.Equal(t, 3, cfg.MaxOrder)
	assert.Equal(t, config.CollapseSecond, cfg.Collapse)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "bank.yaml", "octaves: 8\n")
	t.Setenv("SCATSPECTRA_OCTAVES", "3")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Octaves)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeFile(t, "bad.yaml", "collapse: sometimes\n")
	_, err := config.Load(config.New(), path)
	assert.ErrorIs(t, err, config.ErrInvalid)

	path = writeFile(t, "bad.yaml", "path_limit: 0\n")
	_, err = config.Load(config.New(), path)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfig_IndexerOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Collapse = config.CollapseSecond
	cfg.PathLimit = 4

	_, err := scale.NewScaleIndexer(cfg.Octaves, cfg.Densities, cfg.MaxOrder, cfg.IndexerOptions()...)
	assert.ErrorIs(t, err, scale.ErrPathLimit, "limit 4 < 5 order-1 paths")
}
