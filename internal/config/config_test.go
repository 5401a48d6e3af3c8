package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xliffsync.toml")
	content := `source-language = "en-US"
target-language = "de-DE"
tree-keys = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.SourceLanguage)
	assert.Equal(t, "de-DE", cfg.TargetLanguage)
	assert.True(t, cfg.TreeKeys)
}

func TestLoad_MissingImplicitFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile), false)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), true)
	assert.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("source-language = ["), 0o644))

	_, err := Load(path, true)
	assert.Error(t, err)
}
