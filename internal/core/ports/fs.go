package ports

import "github.com/crackingshells/hatch-registry/internal/core/domain"

// MetadataLoader reads a package metadata file from a package directory.
//
//go:generate mockgen -source=fs.go -destination=mocks/mock_fs.go -package=mocks
type MetadataLoader interface {
	// Load reads and parses the metadata file (filename relative to dir).
	Load(dir, filename string) (domain.PackageMetadata, error)
}

// ArtifactScanner discovers release artifacts in a package directory and
// computes their content digests.
type ArtifactScanner interface {
	// Scan returns the package directory's files as artifacts with
	// xxhash content digests, paths relative to dir.
	Scan(dir string) ([]domain.Artifact, error)
}
