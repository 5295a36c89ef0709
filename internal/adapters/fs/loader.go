// Package fs implements filesystem access for package directories:
// metadata loading and artifact digesting.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataLoader = (*Loader)(nil)

// Loader implements ports.MetadataLoader for JSON metadata files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the metadata file inside a package directory.
func (l *Loader) Load(dir, filename string) (domain.PackageMetadata, error) {
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path) //nolint:gosec // Path names the user's own package directory
	if err != nil {
		wrapped := zerr.Wrap(err, domain.ErrMetadataReadFailed.Error())
		return domain.PackageMetadata{}, zerr.With(wrapped, "path", path)
	}

	var meta domain.PackageMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrMetadataParseFailed.Error())
		return domain.PackageMetadata{}, zerr.With(wrapped, "path", path)
	}

	return meta, nil
}
