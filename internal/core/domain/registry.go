// Package domain contains the core domain model of the Hatch package
// registry: the repository tree, differential version records and the
// invariants that connect them.
package domain

import "slices"

// SchemaVersion is the registry document schema version written to new
// registry files.
const SchemaVersion = "1.0.0"

const (
	// RegistryFileName is the default name of the registry document.
	RegistryFileName = "hatch_registry.json"

	// MetadataFileName is the default metadata file inside a package
	// directory.
	MetadataFileName = "hatch_metadata.json"

	// ConfigFileName is the name of the CLI configuration file.
	ConfigFileName = "hatch-registry.yaml"

	// DirPerm is the default permission for created directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for created files (rw-r--r--).
	FilePerm = 0o644
)

// Stats holds registry-wide aggregate counters.
type Stats struct {
	TotalPackages  int `json:"total_packages"`
	TotalVersions  int `json:"total_versions"`
	TotalArtifacts int `json:"total_artifacts"`
}

// Repository groups packages published from one source repository.
type Repository struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`

	Packages []Package `json:"packages"`

	// LastIndexed is the RFC 3339 timestamp of the last indexing run.
	LastIndexed string `json:"last_indexed,omitempty"`
}

// Package returns the index of the named package, or -1.
func (r *Repository) Package(name string) int {
	return slices.IndexFunc(r.Packages, func(p Package) bool {
		return p.Name == name
	})
}

// Clone returns a deep copy of the repository.
func (r Repository) Clone() Repository {
	out := r
	out.Packages = make([]Package, len(r.Packages))
	for i, p := range r.Packages {
		out.Packages[i] = p.Clone()
	}
	return out
}

// Registry is the root of the registry document: an in-memory tree of
// repositories, packages and version records, serialized to a single JSON
// file by the store adapter.
type Registry struct {
	SchemaVersion string `json:"registry_schema_version"`

	// LastUpdated is the RFC 3339 timestamp of the last mutation.
	LastUpdated string `json:"last_updated"`

	Repositories []Repository `json:"repositories"`
	Stats        Stats        `json:"stats"`
}

// NewRegistry creates an empty registry document.
func NewRegistry() *Registry {
	return &Registry{
		SchemaVersion: SchemaVersion,
		Repositories:  []Repository{},
	}
}

// Repository returns the index of the named repository, or -1.
func (r *Registry) Repository(name string) int {
	return slices.IndexFunc(r.Repositories, func(repo Repository) bool {
		return repo.Name == name
	})
}

// Clone returns a deep copy of the registry document.
func (r Registry) Clone() Registry {
	out := r
	out.Repositories = make([]Repository, len(r.Repositories))
	for i, repo := range r.Repositories {
		out.Repositories[i] = repo.Clone()
	}
	return out
}
