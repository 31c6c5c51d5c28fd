// Test Type: Unit Test
// Description: Tests for the built-in preset library

package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sieve/pkg/errors"
	"github.com/arthur-debert/sieve/pkg/presets"
)

func TestNames(t *testing.T) {
	names := presets.Names()
	assert.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)

	for _, expected := range []string{"editors", "go", "linux", "macos", "node", "python", "ssh", "windows"} {
		assert.Contains(t, names, expected)
	}
}

func TestLoad(t *testing.T) {
	t.Run("every_preset_compiles", func(t *testing.T) {
		for _, name := range presets.Names() {
			set, err := presets.Load(name)
			require.NoError(t, err, "preset %q", name)
			assert.Greater(t, set.Len(), 0, "preset %q", name)
		}
	})

	t.Run("unknown_preset", func(t *testing.T) {
		_, err := presets.Load("fortran77")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPresetNotFound))
	})

	t.Run("macos_excludes_finder_metadata", func(t *testing.T) {
		set, err := presets.Load("macos")
		require.NoError(t, err)
		assert.True(t, set.Match(".DS_Store", false))
		assert.True(t, set.Match("photos/.DS_Store", false))
	})

	t.Run("python_excludes_bytecode_caches", func(t *testing.T) {
		set, err := presets.Load("python")
		require.NoError(t, err)
		assert.True(t, set.Match("pkg/__pycache__", true))
		assert.True(t, set.Match("pkg/__pycache__/mod.cpython-312.pyc", false))
		assert.True(t, set.Match("mod.pyc", false))
	})

	t.Run("ssh_excludes_key_material", func(t *testing.T) {
		set, err := presets.Load("ssh")
		require.NoError(t, err)
		assert.True(t, set.Match("id_ed25519", false))
		assert.True(t, set.Match("backup/server.pem", false))
	})
}

func TestContent(t *testing.T) {
	content, err := presets.Content("go")
	require.NoError(t, err)
	assert.Contains(t, string(content), "*.test")
}
