// Test Type: Integration Test
// Description: Tests for the sieve command tree - flags, output, exit semantics

package sieve_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sieve/cmd/sieve"
)

// runCommand executes the command tree with args and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Isolate config and log files from the host environment.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	var out bytes.Buffer
	cmd := sieve.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	t.Run("prints_excluded_paths", func(t *testing.T) {
		out, err := runCommand(t, "check", "-p", "*.bak", "notes.bak", "kept.txt")
		require.NoError(t, err)
		assert.Equal(t, "notes.bak\n", out)
	})

	t.Run("detail_shows_deciding_pattern", func(t *testing.T) {
		out, err := runCommand(t, "check", "--detail", "-p", "*.bak", "notes.bak")
		require.NoError(t, err)
		assert.Equal(t, "*.bak:1:notes.bak\n", out)
	})

	t.Run("nothing_excluded_signals_exit_one", func(t *testing.T) {
		_, err := runCommand(t, "check", "-p", "*.bak", "kept.txt")
		assert.ErrorIs(t, err, sieve.ErrNothingExcluded)
	})

	t.Run("negation_via_patterns", func(t *testing.T) {
		out, err := runCommand(t, "check", "-p", "*.txt", "-p", "!keep.txt", "keep.txt", "other.txt")
		require.NoError(t, err)
		assert.Equal(t, "other.txt\n", out)
	})

	t.Run("ignore_file_source", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".myignore")
		require.NoError(t, os.WriteFile(path, []byte("build/\n*.log\n"), 0644))

		out, err := runCommand(t, "check", "-f", path, "build/out.bin", "app.log", "main.go")
		require.NoError(t, err)
		assert.Equal(t, "build/out.bin\napp.log\n", out)
	})

	t.Run("malformed_ignore_file_fails", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".myignore")
		require.NoError(t, os.WriteFile(path, []byte("*.[oa\n"), 0644))

		_, err := runCommand(t, "check", "-f", path, "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unterminated character class")
	})

	t.Run("preset_source", func(t *testing.T) {
		out, err := runCommand(t, "check", "--preset", "macos", ".DS_Store")
		require.NoError(t, err)
		assert.Equal(t, ".DS_Store\n", out)
	})
}

func TestExplainCommand(t *testing.T) {
	t.Run("excluded_with_pattern", func(t *testing.T) {
		out, err := runCommand(t, "explain", "-p", "*.bak", "notes.bak")
		require.NoError(t, err)
		assert.Contains(t, out, "verdict:  excluded")
		assert.Contains(t, out, "*.bak (line 1)")
	})

	t.Run("terminal_ancestor", func(t *testing.T) {
		out, err := runCommand(t, "explain", "-p", "build/", "-p", "!build/keep.txt", "build/keep.txt")
		require.NoError(t, err)
		assert.Contains(t, out, "verdict:  excluded")
		assert.Contains(t, out, `ancestor directory "build" is excluded`)
	})

	t.Run("kept_by_default", func(t *testing.T) {
		out, err := runCommand(t, "explain", "-p", "*.bak", "main.go")
		require.NoError(t, err)
		assert.Contains(t, out, "verdict:  kept")
		assert.Contains(t, out, "no pattern matched")
	})
}

func TestFilterCommand(t *testing.T) {
	setupTree := func(t *testing.T) string {
		t.Helper()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "build"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("x"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "build", "out.bin"), []byte("x"), 0644))
		return dir
	}

	t.Run("prints_kept_paths", func(t *testing.T) {
		dir := setupTree(t)
		out, err := runCommand(t, "filter", "-p", "build/", dir)
		require.NoError(t, err)
		assert.Equal(t, "main.go\n", out)
	})

	t.Run("excluded_flag_inverts", func(t *testing.T) {
		dir := setupTree(t)
		out, err := runCommand(t, "filter", "-p", "build/", "--excluded", dir)
		require.NoError(t, err)
		assert.Equal(t, "build\n", out)
	})
}

func TestPresetsCommand(t *testing.T) {
	t.Run("lists_names", func(t *testing.T) {
		out, err := runCommand(t, "presets")
		require.NoError(t, err)
		assert.Contains(t, out, "macos\n")
		assert.Contains(t, out, "python\n")
	})

	t.Run("prints_preset_content", func(t *testing.T) {
		out, err := runCommand(t, "presets", "macos")
		require.NoError(t, err)
		assert.Contains(t, out, ".DS_Store")
	})

	t.Run("unknown_preset", func(t *testing.T) {
		_, err := runCommand(t, "presets", "fortran77")
		require.Error(t, err)
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("toml_output", func(t *testing.T) {
		out, err := runCommand(t, "config")
		require.NoError(t, err)
		assert.Contains(t, out, "case_insensitive")
		assert.Contains(t, out, "max_backtrack")
	})

	t.Run("yaml_output", func(t *testing.T) {
		out, err := runCommand(t, "config", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "case_insensitive: false")
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := runCommand(t, "config", "--format", "ini")
		require.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sieve version")
}
