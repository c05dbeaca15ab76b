package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aharrow/plychess/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	c := config.Default()
	assert.Equal(t, 64, c.Search.HashSizeMB)
	assert.True(t, c.Search.UseTransposition)
	assert.True(t, c.Search.UseLMR)
	assert.Equal(t, "INFO", c.Log.Level)
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	c := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Equal(t, config.Default(), c)
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[Search]\nHashSizeMB = 256\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c := config.Load(path)
	assert.Equal(t, 256, c.Search.HashSizeMB)
	assert.True(t, c.Search.UseLMR, "fields absent from the file keep their default")
	assert.Equal(t, "INFO", c.Log.Level)
}
