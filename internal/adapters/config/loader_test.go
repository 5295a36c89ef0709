package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crackingshells/hatch-registry/internal/adapters/config"
	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	loader := config.NewLoader()

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.RegistryFileName, cfg.RegistryPath)
	assert.Equal(t, domain.MetadataFileName, cfg.MetadataFile)
	assert.False(t, cfg.JSONLogs)
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
registry_path: state/registry.json
metadata_file: custom_metadata.json
json_logs: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))

	cfg, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	// Relative registry paths are anchored at the config file location.
	assert.Equal(t, filepath.Join(dir, "state", "registry.json"), cfg.RegistryPath)
	assert.Equal(t, "custom_metadata.json", cfg.MetadataFile)
	assert.True(t, cfg.JSONLogs)
}

func TestLoad_AbsoluteRegistryPathKept(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "registry.json")
	content := "registry_path: " + abs + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))

	cfg, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.RegistryPath)
}

func TestLoad_WalksUpTheTree(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName),
		[]byte("metadata_file: upstream_metadata.json\n"), 0o644))

	cfg, err := config.NewLoader().Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "upstream_metadata.json", cfg.MetadataFile)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName),
		[]byte("registry_path: [unterminated"), 0o644))

	_, err := config.NewLoader().Load(dir)
	require.Error(t, err)
}
