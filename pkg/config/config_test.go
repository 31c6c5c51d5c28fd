// Test Type: Unit Test
// Description: Tests for layered configuration loading - defaults, file, env

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sieve/pkg/config"
)

// useConfigHome points XDG_CONFIG_HOME at a temp dir for the test.
func useConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		useConfigHome(t)

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.False(t, cfg.Matching.CaseInsensitive)
		assert.Equal(t, 10000, cfg.Matching.MaxBacktrack)
		assert.Empty(t, cfg.Sources.Presets)
		assert.Empty(t, cfg.Sources.IgnoreFiles)
	})

	t.Run("user_file_overrides_defaults", func(t *testing.T) {
		dir := useConfigHome(t)

		confDir := filepath.Join(dir, "sieve")
		require.NoError(t, os.MkdirAll(confDir, 0755))
		content := "[matching]\ncase_insensitive = true\n\n[sources]\npresets = [\"macos\", \"editors\"]\n"
		require.NoError(t, os.WriteFile(filepath.Join(confDir, "sieve.toml"), []byte(content), 0644))

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.True(t, cfg.Matching.CaseInsensitive)
		assert.Equal(t, []string{"macos", "editors"}, cfg.Sources.Presets)
		// untouched keys keep their defaults
		assert.Equal(t, 10000, cfg.Matching.MaxBacktrack)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		dir := useConfigHome(t)

		confDir := filepath.Join(dir, "sieve")
		require.NoError(t, os.MkdirAll(confDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(confDir, "sieve.toml"),
			[]byte("[matching]\nmax_backtrack = 500\n"), 0644))

		t.Setenv("SIEVE_MATCHING__MAX_BACKTRACK", "20000")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 20000, cfg.Matching.MaxBacktrack)
	})

	t.Run("malformed_file_is_a_config_error", func(t *testing.T) {
		dir := useConfigHome(t)

		confDir := filepath.Join(dir, "sieve")
		require.NoError(t, os.MkdirAll(confDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(confDir, "sieve.toml"),
			[]byte("[matching\nbroken"), 0644))

		_, err := config.Load()
		require.Error(t, err)
	})
}

func TestPath(t *testing.T) {
	dir := useConfigHome(t)
	assert.Equal(t, filepath.Join(dir, "sieve", "sieve.toml"), config.Path())
}
