// Package config provides the configuration loader for hatch-registry.
package config

import (
	"os"
	"path/filepath"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Config is the effective CLI configuration after defaults are applied.
type Config struct {
	RegistryPath string
	MetadataFile string
	JSONLogs     bool
}

// Loader reads hatch-registry.yaml by walking up from the working
// directory. A missing file is not an error: built-in defaults apply.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load resolves the configuration for the given working directory.
func (l *Loader) Load(cwd string) (*Config, error) {
	cfg := &Config{
		RegistryPath: domain.RegistryFileName,
		MetadataFile: domain.MetadataFileName,
	}

	path, err := l.findConfiguration(cwd)
	if err != nil {
		// No config file anywhere up the tree: defaults.
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path discovered under the user's own tree
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.RegistryPath != "" {
		cfg.RegistryPath = file.RegistryPath
		if !filepath.IsAbs(cfg.RegistryPath) {
			cfg.RegistryPath = filepath.Join(filepath.Dir(path), cfg.RegistryPath)
		}
	}
	if file.MetadataFile != "" {
		cfg.MetadataFile = file.MetadataFile
	}
	cfg.JSONLogs = file.JSONLogs

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}
