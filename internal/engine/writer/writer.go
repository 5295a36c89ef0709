// Package writer appends new versions to packages, choosing full storage
// for a package's first version and differential storage for every
// subsequent one.
package writer

import (
	"fmt"
	"time"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/crackingshells/hatch-registry/internal/core/ports"
	"github.com/crackingshells/hatch-registry/internal/engine/chain"
	"github.com/crackingshells/hatch-registry/internal/engine/delta"
	"go.trai.ch/zerr"
)

// releaseURIFormat builds the downloadable archive location for a version:
// repository, package-vVersion (twice).
const releaseURIFormat = "https://github.com/CrackingShells/%s/releases/download/%s-v%s/%s-v%s.zip"

// Writer orchestrates the delta computer and the chain reconstructor to
// produce the persisted version record. Writes are all-or-nothing: on any
// failure no record is appended and the store is left untouched.
type Writer struct {
	store         ports.RegistryStore
	reconstructor *chain.Reconstructor
	clock         ports.Clock
	logger        ports.Logger
}

// New creates a Writer with the given dependencies.
func New(store ports.RegistryStore, reconstructor *chain.Reconstructor, clock ports.Clock, logger ports.Logger) *Writer {
	return &Writer{
		store:         store,
		reconstructor: reconstructor,
		clock:         clock,
		logger:        logger,
	}
}

// AddVersion appends a new version to an existing package.
//
// The first version of a package becomes the root record: the full
// dependency lists and compatibility map are stored verbatim as additions
// against an empty base, and no base_version is set. Every later version
// stores only its delta against the package's current latest version, which
// is first expanded through chain reconstruction. Empty delta components
// are omitted from the record entirely, keeping the common "nothing
// changed" case cheap.
//
// latest_version moves to the new record unconditionally. When the new
// identifier orders below the latest it replaces, a warning is logged but
// the write proceeds: the newest record is the delta base regardless of
// how its identifier compares.
func (w *Writer) AddVersion(repo, pkgName string, meta domain.PackageMetadata, artifacts []domain.Artifact) (*domain.VersionRecord, error) {
	pkg, err := w.store.FindPackage(repo, pkgName)
	if err != nil {
		return nil, err
	}

	if pkg.HasVersion(meta.Version) {
		err := zerr.With(domain.ErrDuplicateVersion, "package", pkgName)
		return nil, zerr.With(err, "version", meta.Version)
	}

	if pkg.LatestVersion != "" && domain.CompareVersions(meta.Version, pkg.LatestVersion) < 0 {
		w.logger.Warn(fmt.Sprintf(
			"version %s of %s orders below current latest %s; latest_version still moves to it",
			meta.Version, pkgName, pkg.LatestVersion,
		))
	}

	record := domain.VersionRecord{
		Version:    meta.Version,
		AddedDate:  w.clock.Now().UTC().Format(time.RFC3339),
		ReleaseURI: fmt.Sprintf(releaseURIFormat, repo, pkgName, meta.Version, pkgName, meta.Version),
		Artifacts:  artifacts,
	}

	if len(pkg.Versions) == 0 {
		w.fillRoot(&record, meta)
	} else {
		if err := w.fillDelta(&record, pkg, meta); err != nil {
			return nil, err
		}
	}

	if err := w.store.AppendVersion(repo, pkgName, record); err != nil {
		return nil, err
	}

	w.logger.Info(fmt.Sprintf("added version %s to package %s", meta.Version, pkgName))
	return &record, nil
}

// fillRoot stores the full metadata as additions against an empty base.
func (w *Writer) fillRoot(record *domain.VersionRecord, meta domain.PackageMetadata) {
	if len(meta.HatchDependencies) > 0 {
		record.HatchDependenciesAdded = meta.HatchDependencies
	}
	if len(meta.PythonDependencies) > 0 {
		record.PythonDependenciesAdded = meta.PythonDependencies
	}
	record.CompatibilityChanges = delta.Compatibility(domain.Compatibility{}, meta.Compatibility)
}

// fillDelta reconstructs the current latest version and stores only the
// difference to it.
func (w *Writer) fillDelta(record *domain.VersionRecord, pkg *domain.Package, meta domain.PackageMetadata) error {
	base := pkg.LatestVersion

	full, err := w.reconstructor.Reconstruct(pkg, base)
	if err != nil {
		return zerr.Wrap(err, "failed to reconstruct base version")
	}

	record.BaseVersion = base

	if d := delta.Dependencies(full.HatchDependencies, meta.HatchDependencies); !d.IsZero() {
		record.HatchDependenciesAdded = d.Added
		record.HatchDependenciesRemoved = d.Removed
		record.HatchDependenciesModified = d.Modified
	}
	if d := delta.PythonDependencies(full.PythonDependencies, meta.PythonDependencies); !d.IsZero() {
		record.PythonDependenciesAdded = d.Added
		record.PythonDependenciesRemoved = d.Removed
		record.PythonDependenciesModified = d.Modified
	}
	record.CompatibilityChanges = delta.Compatibility(full.Compatibility, meta.Compatibility)

	return nil
}
