// Package ports defines the core interfaces for the application.
package ports

import "github.com/crackingshells/hatch-registry/internal/core/domain"

// RegistryStore defines the interface for the registry data substrate: an
// in-memory repositories -> packages -> versions tree persisted as a JSON
// document. Mutations are serialized by the implementation so concurrent
// writers can never append divergent deltas against the same base, and
// readers observe either the pre-write or post-write state, never a
// partially appended chain.
//
// Find operations return deep copies; stored records are never handed out
// as live references.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RegistryStore interface {
	// AddRepository adds a new, empty repository.
	AddRepository(name, url string) error

	// FindRepository retrieves a repository by name.
	FindRepository(name string) (*domain.Repository, error)

	// RemoveRepository removes a repository and everything under it.
	RemoveRepository(name string) error

	// UpdateRepositoryTimestamp refreshes a repository's last_indexed time.
	UpdateRepositoryTimestamp(name string) error

	// AddPackage adds a package to a repository.
	AddPackage(repo string, pkg domain.Package) error

	// FindPackage retrieves a package by repository and name.
	FindPackage(repo, name string) (*domain.Package, error)

	// RemovePackage removes a package from a repository.
	RemovePackage(repo, name string) error

	// UpdatePackageMetadata applies a description/tags patch to a package.
	UpdatePackageMetadata(repo, name string, patch domain.PackagePatch) error

	// AppendVersion appends a version record to a package's history,
	// bumps latest_version to the new record unconditionally and updates
	// the aggregate counters. Returns ErrDuplicateVersion if the
	// identifier is already taken.
	AppendVersion(repo, pkg string, record domain.VersionRecord) error

	// FindVersion retrieves one version record.
	FindVersion(repo, pkg, version string) (*domain.VersionRecord, error)

	// RemoveVersion removes a version record and recomputes
	// latest_version from the newest remaining added_date.
	RemoveVersion(repo, pkg, version string) error

	// Stats returns the registry-wide aggregate counters.
	Stats() (domain.Stats, error)

	// Snapshot returns a deep copy of the whole registry document.
	Snapshot() (*domain.Registry, error)
}
